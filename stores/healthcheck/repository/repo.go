package repository

import (
	"time"

	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/domain"
	hcdomain "github.com/x-xyz/salesbot/domain/healthcheck"
)

const pingTimeout = 2 * time.Second

type impl struct {
	dedup domain.DedupStore
}

// New creates a HealthCheckRepo reading the posted set
func New(dedup domain.DedupStore) hcdomain.HealthCheckRepo {
	return &impl{dedup: dedup}
}

// DedupSize doubles as a liveness probe of the backing store
func (im *impl) DedupSize(c ctx.Ctx) (int, error) {
	cc, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()
	n, err := im.dedup.Len(cc)
	if err != nil {
		c.WithField("err", err).Error("dedup.Len failed")
		return 0, err
	}
	return n, nil
}
