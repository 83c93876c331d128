package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/domain/mocks"
	dedup "github.com/x-xyz/salesbot/stores/dedup/repository"
	"github.com/x-xyz/salesbot/stores/healthcheck/repository"
)

var mockCtx = ctx.Background()

type healthCheckSuite struct {
	suite.Suite
}

func TestHealthCheck(t *testing.T) {
	suite.Run(t, new(healthCheckSuite))
}

func (s *healthCheckSuite) TestCheck() {
	store, err := dedup.NewMemoryStore(dedup.DefaultCapacity())
	s.Require().NoError(err)
	s.Require().NoError(store.Add(mockCtx, "tx1"))
	s.Require().NoError(store.Add(mockCtx, "tx2"))

	rates := &mocks.RateCache{}
	rates.On("Get", mock.Anything).Return(decimal.RequireFromString("0.35"), true).Once()

	im := New(repository.New(store), rates, func() map[string]int { return map[string]int{"posted": 2} })
	status, err := im.Check(mockCtx)
	s.Require().NoError(err)
	s.Equal(2, status.DedupSize)
	s.Equal("0.35", status.LastRate)
	s.Equal(map[string]int{"posted": 2}, status.Counts)
	rates.AssertExpectations(s.T())
}

func (s *healthCheckSuite) TestExpiredRate() {
	store, err := dedup.NewMemoryStore(dedup.DefaultCapacity())
	s.Require().NoError(err)
	rates := &mocks.RateCache{}
	rates.On("Get", mock.Anything).Return(decimal.Zero, false).Once()

	status, err := New(repository.New(store), rates, nil).Check(mockCtx)
	s.Require().NoError(err)
	s.Empty(status.LastRate)
	s.Empty(status.Counts)
}

func (s *healthCheckSuite) TestStoreDown() {
	store := &mocks.DedupStore{}
	store.On("Len", mock.Anything).Return(0, errors.New("connection refused")).Once()

	_, err := New(repository.New(store), &mocks.RateCache{}, nil).Check(mockCtx)
	s.Error(err)
	store.AssertExpectations(s.T())
}
