/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/x-xyz/salesbot/base/env"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		ddTags: []string{
			"host:", // remove unused host tag
			"pod:" + env.PodName(),
			"env:" + orDefault(viper.GetString("env_name"), env.EnvName),
			"app:" + orDefault(viper.GetString("app_name"), env.AppName),
		},
	}
}

func orDefault(v string, fallback func() string) string {
	if v != "" {
		return v
	}
	return fallback()
}

type Metrics struct {
	pkgName string
	ddTags  []string
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

func (mt *Metrics) tags(tags []string) []string {
	return append(append([]string{}, mt.ddTags...), parseTag(tags)...)
}

// guard turns a panic in a bump (odd tag count, broken client) into a counter
func (mt *Metrics) guard(kind, key string, tags []string) {
	if err := recover(); err != nil {
		_ = client().Count(kind+".panic", 1, []string{"tag:" + mt.key(key) + "#" + strings.Join(tags, "#")}, 1)
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.guard("bumpavg", key, tags)
	report(client().Gauge(mt.key(key), val, mt.tags(tags), 1), key, val)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.guard("bumpsum", key, tags)
	report(client().Count(mt.key(key), int64(val), mt.tags(tags), 1), key, val)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.guard("bumphistogram", key, tags)
	report(client().Histogram(mt.key(key), val, mt.tags(tags), 1), key, val)
}

// BumpTime starts a timer, End() records it. Typical use:
//
//     defer s.BumpTime("flow.script").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		key:   mt.key(key),
		tags:  mt.tags(tags),
	}
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	d := time.Since(t.start)
	ms := float64(d) / float64(time.Millisecond)
	report(client().TimeInMilliseconds(t.key, ms, t.tags, 1), t.key, ms)
}
