package usecase

import (
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/domain"
	hcdomain "github.com/x-xyz/salesbot/domain/healthcheck"
)

type impl struct {
	repo  hcdomain.HealthCheckRepo
	rates domain.RateCache
	stats func() map[string]int
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo, rates domain.RateCache, stats func() map[string]int) hcdomain.HealthCheckUsecase {
	return &impl{
		repo:  repo,
		rates: rates,
		stats: stats,
	}
}

func (im *impl) Check(c ctx.Ctx) (*hcdomain.Status, error) {
	size, err := im.repo.DedupSize(c)
	if err != nil {
		return nil, err
	}
	status := &hcdomain.Status{DedupSize: size, Counts: map[string]int{}}
	if rate, ok := im.rates.Get(c); ok {
		status.LastRate = rate.String()
	}
	if im.stats != nil {
		status.Counts = im.stats()
	}
	return status, nil
}
