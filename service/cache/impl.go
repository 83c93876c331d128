package cache

import (
	"encoding/json"

	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/log"
	"github.com/x-xyz/salesbot/domain/keys"
	"github.com/x-xyz/salesbot/service/cache/provider"
)

type impl struct {
	cfg ServiceConfig
}

func New(cfg ServiceConfig) Service {
	if cfg.Serialize == nil {
		cfg.Serialize = json.Marshal
	}
	if cfg.Deserialize == nil {
		cfg.Deserialize = json.Unmarshal
	}
	return &impl{cfg: cfg}
}

func (im *impl) key(key string) string {
	return keys.RedisKey(im.cfg.Pfx, key)
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = im.key(key)

	val, _, err := im.cfg.Cache.Get(c, key)
	if err == provider.ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Get failed")
		return err
	}

	if err := im.cfg.Deserialize(val, container); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("deserialize failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = im.key(key)

	val, err := im.cfg.Serialize(value)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("serialize failed")
		return err
	}
	if err := im.cfg.Cache.Set(c, key, val, im.cfg.Ttl); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = im.key(key)

	if err := im.cfg.Cache.Del(c, key); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Del failed")
		return err
	}
	return nil
}
