package repository

import (
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/database/redisclient"
	"github.com/x-xyz/salesbot/domain"
)

var mockCtx = ctx.Background()

type dedupSuite struct {
	suite.Suite
	newStore func(cp Capacity) domain.DedupStore
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &dedupSuite{newStore: func(cp Capacity) domain.DedupStore {
		s, err := NewMemoryStore(cp)
		require.NoError(t, err)
		return s
	}})
}

func TestRedisStore(t *testing.T) {
	uri := os.Getenv("REDIS_URI")
	if uri == "" {
		t.Skip("REDIS_URI not set")
	}
	pool, err := redisclient.Connect(mockCtx, uri, "", redisclient.Param{})
	require.NoError(t, err)
	defer pool.Close()

	var stores []*redisStore
	defer func() {
		conn := pool.Get()
		defer conn.Close()
		for _, st := range stores {
			_, _ = conn.Do("DEL", st.setKey, st.seqKey)
		}
	}()

	suite.Run(t, &dedupSuite{newStore: func(cp Capacity) domain.DedupStore {
		s, err := NewRedisStore(pool, uuid.NewString(), cp)
		require.NoError(t, err)
		stores = append(stores, s.(*redisStore))
		return s
	}})
}

func (s *dedupSuite) TestHasAfterAdd() {
	store := s.newStore(DefaultCapacity())

	has, err := store.Has(mockCtx, "tx1")
	s.NoError(err)
	s.False(has)

	s.NoError(store.Add(mockCtx, "tx1"))
	has, err = store.Has(mockCtx, "tx1")
	s.NoError(err)
	s.True(has)

	s.NoError(store.Add(mockCtx, "tx1"))
	n, err := store.Len(mockCtx)
	s.NoError(err)
	s.Equal(1, n)
}

func (s *dedupSuite) TestEvictOldest() {
	store := s.newStore(Capacity{Ceiling: 20, EvictCount: 5})

	for i := 0; i < 20; i++ {
		s.NoError(store.Add(mockCtx, fmt.Sprintf("tx%d", i)))
	}
	n, _ := store.Len(mockCtx)
	s.Equal(20, n)

	s.NoError(store.Add(mockCtx, "tx20"))
	n, _ = store.Len(mockCtx)
	s.Equal(16, n)

	for i := 0; i < 5; i++ {
		has, _ := store.Has(mockCtx, fmt.Sprintf("tx%d", i))
		s.False(has, i)
	}
	for i := 5; i <= 20; i++ {
		has, _ := store.Has(mockCtx, fmt.Sprintf("tx%d", i))
		s.True(has, i)
	}
}

func (s *dedupSuite) TestEvictDefaultCeiling() {
	store := s.newStore(DefaultCapacity())

	for i := 0; i <= DefaultCeiling; i++ {
		s.Require().NoError(store.Add(mockCtx, fmt.Sprintf("tx%d", i)))
	}
	n, _ := store.Len(mockCtx)
	s.Equal(DefaultCeiling+1-DefaultEvictCount, n)

	has, _ := store.Has(mockCtx, "tx999")
	s.False(has)
	has, _ = store.Has(mockCtx, "tx1000")
	s.True(has)

	evicted, err := store.EvictIfOverCapacity(mockCtx)
	s.NoError(err)
	s.Equal(0, evicted)
}

func TestCapacityValidate(t *testing.T) {
	_, err := NewMemoryStore(Capacity{Ceiling: 10, EvictCount: 11})
	require.ErrorIs(t, err, domain.ErrBadParamInput)
	_, err = NewMemoryStore(Capacity{})
	require.ErrorIs(t, err, domain.ErrBadParamInput)
}
