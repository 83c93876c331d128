package redisclient

import (
	"context"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/salesbot/base/backoff"
	"github.com/x-xyz/salesbot/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
)

// Param tunes the pool, zero values fall back to the defaults
type Param struct {
	MaxIdle   int
	MaxActive int
	// Retries is how many extra dials are made before giving up
	Retries int
}

// MustConnect panics if the connection fails
func MustConnect(uri, password string, param Param) *redis.Pool {
	p, err := Connect(context.Background(), uri, password, param)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// Connect builds a pool for uri and checks it with a PING
func Connect(c context.Context, uri, password string, param Param) (*redis.Pool, error) {
	if param.MaxIdle == 0 {
		param.MaxIdle = 8
	}
	if param.MaxActive == 0 {
		param.MaxActive = 64
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	p := &redis.Pool{
		MaxIdle:     param.MaxIdle,
		MaxActive:   param.MaxActive,
		Wait:        true,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	bo := backoff.NewLinear(time.Second, 5*time.Second)
	var err error
	for {
		if err = ping(p); err == nil {
			break
		}
		log.Log().WithFields(log.Fields{
			"redisURI": uri,
			"err":      err,
			"attempt":  bo.Attempts(),
		}).Error("fail to ping Redis")
		if bo.Attempts() >= param.Retries {
			p.Close()
			return nil, err
		}
		if err := bo.Backoff(c); err != nil {
			p.Close()
			return nil, err
		}
	}

	log.Log().WithField("redisURI", uri).Info("redis connected")
	return p, nil
}

func ping(p *redis.Pool) error {
	conn, err := p.Dial()
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Do("PING")
	return err
}
