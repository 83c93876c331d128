package primitive

import (
	"time"

	"github.com/coocood/freecache"
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/log"
	"github.com/x-xyz/salesbot/service/cache/provider"
)

// freecache refuses anything below 512KB
const minSizeMB = 1

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive is an in-process provider backed by freecache, size is in MB
func NewPrimitive(name string, sizeMB int) provider.Provider {
	if sizeMB < minSizeMB {
		sizeMB = minSizeMB
	}
	return &impl{name: name, cache: freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, ttl, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("freecache.Get failed")
		return nil, 0, err
	}
	var left time.Duration
	if ttl > 0 {
		left = time.Until(time.Unix(int64(ttl), 0))
	}
	return val, left, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	secs := int(ttl / time.Second)
	if ttl > 0 && secs == 0 {
		secs = 1
	}
	if err := im.cache.Set([]byte(key), value, secs); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("freecache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
