package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/service/cache/provider"
)

var (
	ErrNotFound = errors.New("cache not found")
)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service is a typed cache over a raw byte provider
type Service interface {
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl         time.Duration
	Pfx         string
	Cache       provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}
