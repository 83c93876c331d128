package tracker

import (
	"time"

	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/metrics"
	"github.com/x-xyz/salesbot/domain"
)

type PriceUpdaterCfg struct {
	Price    domain.PriceUsecase
	Interval time.Duration
}

// PriceUpdater refreshes the cached FLOW rate every Interval
type PriceUpdater struct {
	price     domain.PriceUsecase
	interval  time.Duration
	stoppedCh chan interface{}
}

func NewPriceUpdater(cfg *PriceUpdaterCfg) *PriceUpdater {
	metOnce.Do(func() {
		met = metrics.New("tracker")
	})
	return &PriceUpdater{
		price:     cfg.Price,
		interval:  cfg.Interval,
		stoppedCh: make(chan interface{}),
	}
}

func (u *PriceUpdater) Start(c ctx.Ctx) {
	go u.loop(c)
}

func (u *PriceUpdater) Wait() {
	<-u.stoppedCh
}

func (u *PriceUpdater) loop(c ctx.Ctx) {
	defer close(u.stoppedCh)

	nextTick := time.Second * 0
	for {
		select {
		case <-c.Done():
			return
		case <-time.After(nextTick):
			if rate, ok := u.price.GetRate(c); ok {
				c.WithField("rate", rate.String()).Debug("flow usd rate refreshed")
			} else {
				met.BumpSum("rate.refresh.err", 1)
			}
			nextTick = u.interval
		}
	}
}
