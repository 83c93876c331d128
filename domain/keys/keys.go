package keys

import (
	"strings"
)

const (
	// PfxFlowRate prefixes the cached usd per flow rate
	PfxFlowRate = "flowRate"
	// PfxPosted prefixes the posted transaction set
	PfxPosted = "posted"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// RedisLuaKey wraps the key in a hash tag so every key built from it lands
// on the same cluster slot, needed for MULTI and lua over several keys.
//
// Ref: https://redis.io/topics/cluster-spec#keys-hash-tags
func RedisLuaKey(components ...string) string {
	return "{" + CustomKey(":", components...) + "}"
}
