package repository

import (
	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/domain"
	"github.com/x-xyz/salesbot/domain/keys"
)

// the posted set is a sorted set scored by an insertion counter, both keys
// share one hash tag so the scripts stay on a single cluster slot
var addScript = redis.NewScript(2, `
if redis.call('ZSCORE', KEYS[1], ARGV[1]) then
	return 0
end
local seq = redis.call('INCR', KEYS[2])
redis.call('ZADD', KEYS[1], seq, ARGV[1])
return 1
`)

var evictScript = redis.NewScript(1, `
local size = redis.call('ZCARD', KEYS[1])
if size <= tonumber(ARGV[1]) then
	return 0
end
redis.call('ZREMRANGEBYRANK', KEYS[1], 0, tonumber(ARGV[2]) - 1)
return tonumber(ARGV[2])
`)

type redisStore struct {
	pool     *redis.Pool
	capacity Capacity
	setKey   string
	seqKey   string
}

// NewRedisStore keeps the posted set in redis so it survives restarts.
// namespace separates bots sharing one redis.
func NewRedisStore(pool *redis.Pool, namespace string, capacity Capacity) (domain.DedupStore, error) {
	if err := capacity.validate(); err != nil {
		return nil, err
	}
	tag := keys.RedisLuaKey(keys.PfxPosted, namespace)
	return &redisStore{
		pool:     pool,
		capacity: capacity,
		setKey:   keys.RedisKey(tag, "set"),
		seqKey:   keys.RedisKey(tag, "seq"),
	}, nil
}

func (s *redisStore) Has(c ctx.Ctx, txId string) (bool, error) {
	conn, err := s.pool.GetContext(c)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	if _, err := redis.Int64(conn.Do("ZSCORE", s.setKey, txId)); err == redis.ErrNil {
		return false, nil
	} else if err != nil {
		c.WithField("err", err).WithField("txId", txId).Error("redis.ZSCORE failed")
		return false, err
	}
	return true, nil
}

func (s *redisStore) Add(c ctx.Ctx, txId string) error {
	conn, err := s.pool.GetContext(c)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := redis.Int(addScript.Do(conn, s.setKey, s.seqKey, txId)); err != nil {
		c.WithField("err", err).WithField("txId", txId).Error("addScript.Do failed")
		return err
	}
	_, err = s.evict(c, conn)
	return err
}

func (s *redisStore) Len(c ctx.Ctx) (int, error) {
	conn, err := s.pool.GetContext(c)
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	return redis.Int(conn.Do("ZCARD", s.setKey))
}

func (s *redisStore) EvictIfOverCapacity(c ctx.Ctx) (int, error) {
	conn, err := s.pool.GetContext(c)
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	return s.evict(c, conn)
}

func (s *redisStore) evict(c ctx.Ctx, conn redis.Conn) (int, error) {
	n, err := redis.Int(evictScript.Do(conn, s.setKey, s.capacity.Ceiling, s.capacity.EvictCount))
	if err != nil {
		c.WithField("err", err).Error("evictScript.Do failed")
		return 0, err
	}
	if n > 0 {
		c.WithField("evicted", n).Info("posted set evicted")
	}
	return n, nil
}
