package repository

import (
	"golang.org/x/xerrors"

	"github.com/x-xyz/salesbot/domain"
)

const (
	DefaultCeiling    = 10000
	DefaultEvictCount = 1000
)

// Capacity bounds a posted set. Once the size exceeds Ceiling the EvictCount
// oldest ids, by insertion order, are dropped.
type Capacity struct {
	Ceiling    int
	EvictCount int
}

func DefaultCapacity() Capacity {
	return Capacity{Ceiling: DefaultCeiling, EvictCount: DefaultEvictCount}
}

func (cp Capacity) validate() error {
	if cp.Ceiling <= 0 || cp.EvictCount <= 0 || cp.EvictCount > cp.Ceiling {
		return xerrors.Errorf("capacity %+v: %w", cp, domain.ErrBadParamInput)
	}
	return nil
}
