package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
	"golang.org/x/xerrors"

	"github.com/x-xyz/salesbot/base/cadence"
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/log"
	"github.com/x-xyz/salesbot/domain"
	"github.com/x-xyz/salesbot/service/flow/scripts"
)

// DefaultOracleAddress publishes the FLOW/USD price on mainnet
const DefaultOracleAddress = "0xe385412159992e11"

type impl struct {
	query  domain.ChainQuery
	cache  domain.RateCache
	oracle string
	group  singleflight.Group
}

func New(query domain.ChainQuery, cache domain.RateCache, oracle string) domain.PriceUsecase {
	if oracle == "" {
		oracle = DefaultOracleAddress
	}
	return &impl{query: query, cache: cache, oracle: oracle}
}

func (im *impl) GetRate(c ctx.Ctx) (decimal.Decimal, bool) {
	if rate, ok := im.cache.Get(c); ok {
		return rate, true
	}

	// concurrent cold callers wait on one oracle call
	v, err, _ := im.group.Do("rate", func() (interface{}, error) {
		if rate, ok := im.cache.Get(c); ok {
			return rate, nil
		}
		rate, err := im.fetch(c)
		if err != nil {
			return nil, err
		}
		im.cache.Put(c, rate)
		return rate, nil
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "oracle": im.oracle}).Warn("flow usd rate unavailable")
		return decimal.Zero, false
	}
	return v.(decimal.Decimal), true
}

func (im *impl) fetch(c ctx.Ctx) (decimal.Decimal, error) {
	res, err := im.query.ExecuteScript(c, scripts.FlowPrice, cadence.Address(im.oracle))
	if err != nil {
		return decimal.Zero, xerrors.Errorf("query.ExecuteScript: %w", err)
	}

	raw, ok := firstNumeric(res)
	if !ok {
		return decimal.Zero, xerrors.Errorf("no numeric field in %v: %w", res, domain.ErrInvalidRate)
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, xerrors.Errorf("parse %q: %w", raw, domain.ErrInvalidRate)
	}
	if !rate.IsPositive() {
		return decimal.Zero, xerrors.Errorf("rate %s: %w", rate, domain.ErrInvalidRate)
	}
	return rate, nil
}

// firstNumeric returns the first element of an array result, or a scalar result
func firstNumeric(v interface{}) (string, bool) {
	switch t := v.(type) {
	case []interface{}:
		if len(t) == 0 {
			return "", false
		}
		return firstNumeric(t[0])
	case string:
		return t, t != ""
	}
	s := cadence.ToString(v)
	return s, s != ""
}

func (im *impl) ComputeDisplay(rawAmount decimal.Decimal, paymentCurrency string, rate decimal.Decimal) domain.PriceInfo {
	info := domain.PriceInfo{
		RawAmount:       rawAmount,
		PaymentCurrency: paymentCurrency,
	}

	if paymentCurrency == domain.FlowVault {
		info.UsdAmount = rawAmount.Mul(rate)
		info.NativeAmount = rawAmount
		info.DisplayString = fmt.Sprintf("%s FLOW (~$%s)", rawAmount.String(), info.UsdAmount.StringFixed(2))
		return info
	}

	info.UsdAmount = rawAmount
	if rate.IsPositive() {
		info.NativeAmount = rawAmount.DivRound(rate, 16)
	}
	info.DisplayString = fmt.Sprintf("$%s (~%s FLOW)", info.UsdAmount.StringFixed(2), info.NativeAmount.StringFixed(2))
	return info
}
