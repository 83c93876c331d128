package tracker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/domain/mocks"
)

func TestPriceUpdater(t *testing.T) {
	req := require.New(t)
	var calls int32
	price := &mocks.PriceUsecase{}
	price.On("GetRate", mock.Anything).Run(func(mock.Arguments) {
		atomic.AddInt32(&calls, 1)
	}).Return(decimal.RequireFromString("0.35"), true)

	c, cancel := ctx.WithCancel(ctx.Background())
	u := NewPriceUpdater(&PriceUpdaterCfg{Price: price, Interval: 10 * time.Millisecond})
	u.Start(c)
	req.Eventually(func() bool { return atomic.LoadInt32(&calls) >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	u.Wait()
}
