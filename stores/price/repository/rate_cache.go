package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/log"
	"github.com/x-xyz/salesbot/domain"
	"github.com/x-xyz/salesbot/domain/keys"
	"github.com/x-xyz/salesbot/service/cache"
	"github.com/x-xyz/salesbot/service/cache/provider"
	"github.com/x-xyz/salesbot/service/cache/provider/primitive"
)

const rateKey = "usd"

type rateCache struct {
	cache cache.Service
}

// NewRateCache keeps the rate in an in-process freecache for ttl
func NewRateCache(ttl time.Duration) domain.RateCache {
	return NewRateCacheWithProvider(primitive.NewPrimitive(keys.PfxFlowRate, 1), ttl)
}

func NewRateCacheWithProvider(p provider.Provider, ttl time.Duration) domain.RateCache {
	return &rateCache{
		cache: cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   keys.PfxFlowRate,
			Cache: p,
		}),
	}
}

func (r *rateCache) Get(c ctx.Ctx) (decimal.Decimal, bool) {
	var s string
	if err := r.cache.Get(c, rateKey, &s); err != nil {
		if err != cache.ErrNotFound {
			c.WithField("err", err).Warn("rate cache get failed")
		}
		return decimal.Zero, false
	}
	rate, err := decimal.NewFromString(s)
	if err != nil || !rate.IsPositive() {
		c.WithFields(log.Fields{"err": err, "rate": s}).Warn("bad cached rate")
		return decimal.Zero, false
	}
	return rate, true
}

func (r *rateCache) Put(c ctx.Ctx, rate decimal.Decimal) {
	if err := r.cache.Set(c, rateKey, rate.String()); err != nil {
		c.WithField("err", err).Warn("rate cache put failed")
	}
}
