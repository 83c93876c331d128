package main

import (
	"net/http"
	"strings"

	"github.com/gomodule/redigo/redis"
	"golang.org/x/xerrors"

	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/database/redisclient"
	"github.com/x-xyz/salesbot/base/log"
	"github.com/x-xyz/salesbot/base/tracker"
	"github.com/x-xyz/salesbot/domain"
	hcdomain "github.com/x-xyz/salesbot/domain/healthcheck"
	"github.com/x-xyz/salesbot/service/discord"
	"github.com/x-xyz/salesbot/service/flow"
	"github.com/x-xyz/salesbot/service/flow/subscriber"
	"github.com/x-xyz/salesbot/service/twitter"
	classifierUsecase "github.com/x-xyz/salesbot/stores/classifier/usecase"
	dedupRepo "github.com/x-xyz/salesbot/stores/dedup/repository"
	formatterUsecase "github.com/x-xyz/salesbot/stores/formatter/usecase"
	hcRepo "github.com/x-xyz/salesbot/stores/healthcheck/repository"
	hcUsecase "github.com/x-xyz/salesbot/stores/healthcheck/usecase"
	identityUsecase "github.com/x-xyz/salesbot/stores/identity/usecase"
	priceRepo "github.com/x-xyz/salesbot/stores/price/repository"
	priceUsecase "github.com/x-xyz/salesbot/stores/price/usecase"
)

type app struct {
	price      domain.PriceUsecase
	source     domain.EventSource
	handler    *tracker.SalesBotHandler
	health     hcdomain.HealthCheckUsecase
	publishers []domain.Publisher
	redisPool  *redis.Pool
}

func newApp(c ctx.Ctx, cfg *Config, routing *Routing) (*app, error) {
	a := &app{}

	flowClient := flow.NewClient(&flow.ClientCfg{
		HttpClient: http.Client{},
		AccessNode: cfg.Flow.AccessNode,
		Timeout:    cfg.Flow.Timeout,
	})
	rates := priceRepo.NewRateCache(cfg.Price.Ttl)
	a.price = priceUsecase.New(flowClient, rates, cfg.Price.Oracle)

	dedup, err := a.newDedup(c, cfg.Dedup)
	if err != nil {
		return nil, err
	}

	publishers, err := newPublishers(cfg)
	if err != nil {
		return nil, err
	}
	a.publishers = publishers
	consumers := make([]tracker.Consumer, 0, len(publishers))
	for _, p := range publishers {
		consumers = append(consumers, tracker.Consumer{Name: consumerKey(p.Name()), Publisher: p})
	}

	a.handler = tracker.NewSalesBotHandler(&tracker.SalesBotConfig{
		Dedup:      dedup,
		Price:      a.price,
		Classifier: classifierUsecase.New(),
		Formatter: formatterUsecase.New(&formatterUsecase.Cfg{
			Query:    flowClient,
			TxLog:    flowClient,
			Identity: identityUsecase.New(),
		}),
		TxLog:        flowClient,
		Consumers:    consumers,
		Thresholds:   routing.Matrix,
		Enabled:      routing.Enabled,
		LogAllEvents: cfg.Debug.LogAllEvents,
	})
	a.health = hcUsecase.New(hcRepo.New(dedup), rates, a.handler.Stats)
	a.source = subscriber.New(&subscriber.Cfg{
		Url:          cfg.Flow.WebsocketUrl,
		PingInterval: cfg.Flow.PingInterval,
	})
	return a, nil
}

func (a *app) newDedup(c ctx.Ctx, cfg DedupConfig) (domain.DedupStore, error) {
	capacity := dedupRepo.DefaultCapacity()
	if cfg.Ceiling > 0 {
		capacity.Ceiling = cfg.Ceiling
	}
	if cfg.EvictCount > 0 {
		capacity.EvictCount = cfg.EvictCount
	}
	if cfg.Backend != "redis" {
		return dedupRepo.NewMemoryStore(capacity)
	}

	pool, err := redisclient.Connect(c, cfg.Redis.Uri, cfg.Redis.Password, redisclient.Param{
		MaxIdle:   cfg.Redis.MaxIdle,
		MaxActive: cfg.Redis.MaxActive,
	})
	if err != nil {
		return nil, xerrors.Errorf("redis connect: %w", err)
	}
	a.redisPool = pool
	return dedupRepo.NewRedisStore(pool, cfg.Redis.Namespace, capacity)
}

func (a *app) close() {
	if a.redisPool != nil {
		_ = a.redisPool.Close()
	}
}

func newPublishers(cfg *Config) ([]domain.Publisher, error) {
	res := []domain.Publisher{}
	for i := range cfg.Twitter {
		res = append(res, twitter.New(&cfg.Twitter[i]))
	}
	if cfg.Discord != nil {
		p, err := discord.New(cfg.Discord)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

func verifyPublishers(c ctx.Ctx, publishers []domain.Publisher) error {
	for _, p := range publishers {
		if err := p.Verify(c); err != nil {
			c.WithFields(log.Fields{"publisher": p.Name(), "err": err}).Error("publisher.Verify failed")
			return xerrors.Errorf("verify %s: %w", p.Name(), err)
		}
		c.WithField("publisher", p.Name()).Info("publisher verified")
	}
	return nil
}

// banner logs what the bot will post and where
func banner(c ctx.Ctx, cfg *Config, routing *Routing) {
	enabled := make([]string, 0, len(routing.Enabled))
	for _, col := range routing.Enabled {
		enabled = append(enabled, string(col))
		row := log.Fields{}
		for _, name := range routing.Consumers {
			t, _ := routing.Matrix.Lookup(col, name)
			row[name] = t.String()
		}
		c.WithField("collection", col).WithFields(row).Info("thresholds")
	}
	c.WithFields(log.Fields{
		"collections":  strings.Join(enabled, ","),
		"consumers":    strings.Join(routing.Consumers, ","),
		"dedup":        cfg.Dedup.Backend,
		"logAllEvents": cfg.Debug.LogAllEvents,
	}).Info("salesbot ready")
}
