package domain

import (
	"github.com/shopspring/decimal"
	"github.com/x-xyz/salesbot/base/ctx"
)

type IdentityUsecase interface {
	// ResolveParties scans the transfer events of log for assetInstanceId
	ResolveParties(log TxEventLog, assetType, assetInstanceId string) SaleParty
	// ResolveWithFallback adds the generic convention and the event's own fields
	ResolveWithFallback(log TxEventLog, identity AssetIdentity, event *ChainEvent) SaleParty
}

type PriceUsecase interface {
	GetRate(c ctx.Ctx) (decimal.Decimal, bool)
	ComputeDisplay(rawAmount decimal.Decimal, paymentCurrency string, rate decimal.Decimal) PriceInfo
}

type ClassifierUsecase interface {
	Classify(event *ChainEvent) Classification
	NeedsRefinement(identity AssetIdentity) bool
	Refine(c ctx.Ctx, log TxEventLog, identity AssetIdentity) AssetIdentity
}

type FormatContext struct {
	Event        *ChainEvent
	Log          TxEventLog
	DisplayPrice string
	Marketplace  Marketplace
	Identity     AssetIdentity
}

// Formatter builds the post for one collection, a nil post means do not post
type Formatter interface {
	Format(c ctx.Ctx, fc *FormatContext) (*Post, error)
}

type FormatterUsecase interface {
	Format(c ctx.Ctx, collection Collection, fc *FormatContext) (*Post, error)
}
