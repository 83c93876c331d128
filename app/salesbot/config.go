package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/x-xyz/salesbot/base/validator"
	"github.com/x-xyz/salesbot/domain"
	"github.com/x-xyz/salesbot/service/discord"
	"github.com/x-xyz/salesbot/service/twitter"
)

const envPrefix = "SALESBOT"

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Debug   DebugConfig   `mapstructure:"debug"`
	Server  ServerConfig  `mapstructure:"server"`
	Flow    FlowConfig    `mapstructure:"flow"`
	Price   PriceConfig   `mapstructure:"price"`
	Dedup   DedupConfig   `mapstructure:"dedup"`
	Tracker TrackerConfig `mapstructure:"tracker"`

	Collections []string                      `mapstructure:"collections" validate:"required,min=1,dive,required"`
	Thresholds  map[string]map[string]float64 `mapstructure:"thresholds" validate:"required"`

	Twitter []twitter.ClientCfg `mapstructure:"twitter" validate:"dive"`
	Discord *discord.Cfg        `mapstructure:"discord" validate:"omitempty"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

type DebugConfig struct {
	LogAllEvents bool `mapstructure:"log_all_events"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type FlowConfig struct {
	AccessNode   string        `mapstructure:"access_node" validate:"omitempty,url"`
	WebsocketUrl string        `mapstructure:"websocket_url" validate:"omitempty,url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	PingInterval time.Duration `mapstructure:"ping_interval"`
}

type PriceConfig struct {
	Oracle          string        `mapstructure:"oracle" validate:"omitempty,flowaddr"`
	Ttl             time.Duration `mapstructure:"ttl" validate:"required"`
	// RefreshInterval re-reads the oracle in the background, 0 disables it
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

type DedupConfig struct {
	Backend    string      `mapstructure:"backend" validate:"oneof=memory redis"`
	Ceiling    int         `mapstructure:"ceiling"`
	EvictCount int         `mapstructure:"evict_count"`
	Redis      RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Uri       string `mapstructure:"uri"`
	Password  string `mapstructure:"password"`
	Namespace string `mapstructure:"namespace"`
	MaxIdle   int    `mapstructure:"max_idle"`
	MaxActive int    `mapstructure:"max_active"`
}

type TrackerConfig struct {
	Workers     int `mapstructure:"workers"`
	QueueLength int `mapstructure:"queue_length"`
}

// Routing is the validated form of the collection and threshold settings
type Routing struct {
	Enabled   []domain.Collection
	Matrix    domain.ThresholdMatrix
	Consumers []string
}

func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("price.ttl", time.Minute)
	viper.SetDefault("dedup.backend", "memory")
	viper.SetDefault("flow.timeout", 10*time.Second)
	viper.SetDefault("app_name", "salesbot")
}

// loadConfig reads path into the global viper, flags and SALESBOT_* env vars override it
func loadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	setDefaults()
	viper.SetConfigType("yaml")
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return nil, xerrors.Errorf("read config %s: %w", path, err)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	for _, key := range []string{"discord.bot_key", "discord.channel_id", "dedup.redis.uri", "dedup.redis.password"} {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}
	if flags != nil {
		if f := flags.Lookup("log-level"); f != nil && f.Changed {
			viper.Set("log.level", f.Value.String())
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, xerrors.Errorf("unmarshal config: %w", err)
	}
	for i := range cfg.Twitter {
		overrideTwitterCredentials(&cfg.Twitter[i])
	}
	return cfg, nil
}

// overrideTwitterCredentials reads SALESBOT_TWITTER_<NAME>_<FIELD>, the
// accounts are a list so AutomaticEnv cannot reach them
func overrideTwitterCredentials(tc *twitter.ClientCfg) {
	name := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(tc.Name))
	for field, dst := range map[string]*string{
		"consumer_key":    &tc.ConsumerKey,
		"consumer_secret": &tc.ConsumerSecret,
		"access_token":    &tc.AccessToken,
		"access_secret":   &tc.AccessSecret,
	} {
		if v := viper.GetString(fmt.Sprintf("twitter_%s_%s", name, field)); v != "" {
			*dst = v
		}
	}
}

// consumerKey is how a publisher name appears in the threshold matrix
func consumerKey(name string) string {
	return strings.ToLower(name)
}

// consumerNames lists every publisher in config order
func (cfg *Config) consumerNames() []string {
	names := []string{}
	for _, t := range cfg.Twitter {
		names = append(names, consumerKey(t.Name))
	}
	if cfg.Discord != nil {
		names = append(names, consumerKey(cfg.Discord.Name))
	}
	return names
}

// Validate checks struct tags, then that every enabled collection has a
// threshold for every consumer
func (cfg *Config) Validate() (*Routing, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput)
	}
	if cfg.Dedup.Backend == "redis" && cfg.Dedup.Redis.Uri == "" {
		return nil, xerrors.Errorf("dedup.redis.uri is required for the redis backend: %w", domain.ErrBadParamInput)
	}

	consumers := cfg.consumerNames()
	if len(consumers) == 0 {
		return nil, xerrors.Errorf("no publisher configured: %w", domain.ErrBadParamInput)
	}
	seen := map[string]bool{}
	for _, name := range consumers {
		if seen[name] {
			return nil, xerrors.Errorf("duplicate consumer %q: %w", name, domain.ErrBadParamInput)
		}
		seen[name] = true
	}

	enabled := make([]domain.Collection, 0, len(cfg.Collections))
	for _, name := range cfg.Collections {
		c := domain.Collection(strings.ToUpper(name))
		if !c.Valid() {
			return nil, xerrors.Errorf("unknown collection %q: %w", name, domain.ErrBadParamInput)
		}
		enabled = append(enabled, c)
	}

	matrix, err := domain.ParseThresholdMatrix(upperKeys(cfg.Thresholds))
	if err != nil {
		return nil, err
	}
	if err := matrix.Validate(enabled, consumers); err != nil {
		return nil, err
	}
	return &Routing{Enabled: enabled, Matrix: matrix, Consumers: consumers}, nil
}

// viper lowercases map keys, collection names are upper case and consumer
// names are compared lower cased
func upperKeys(raw map[string]map[string]float64) map[string]map[string]float64 {
	res := make(map[string]map[string]float64, len(raw))
	for k, v := range raw {
		res[strings.ToUpper(k)] = v
	}
	return res
}
