package domain

import (
	"github.com/shopspring/decimal"
	"github.com/x-xyz/salesbot/base/ctx"
)

// DedupStore remembers posted transaction ids
type DedupStore interface {
	Has(c ctx.Ctx, txId string) (bool, error)
	// Add inserts txId and evicts the oldest entries once over capacity
	Add(c ctx.Ctx, txId string) error
	Len(c ctx.Ctx) (int, error)
	EvictIfOverCapacity(c ctx.Ctx) (int, error)
}

// RateCache holds the last USD per FLOW rate until it expires
type RateCache interface {
	Get(c ctx.Ctx) (decimal.Decimal, bool)
	Put(c ctx.Ctx, rate decimal.Decimal)
}
