/*Package metrics wraps datadog-go for metric recording.

Metric naming convention:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"time"

	"github.com/spf13/viper"

	"github.com/bearmarket/goapi/base/env"
)

// Ender finishes a timer started by BumpTime.
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

// New creates a metric client with package name as prefix. Tags come in
// key, value pairs.
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: []string{
				// using host removes all tags associated with host
				// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
				"host:",
				"pod:" + env.PodName(),
				"env:" + viper.GetString("env_name"),
				"app:" + viper.GetString("app_name"),
			},
		},
	}
}

type Metrics struct {
	pkgName string
	datadog DDMetrics
}

func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	mt.datadog.BumpAvg(mt.pkgName+`.`+key, val, tags...)
}

func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	mt.datadog.BumpSum(mt.pkgName+`.`+key, val, tags...)
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	mt.datadog.BumpHistogram(mt.pkgName+`.`+key, val, tags...)
}

// BumpTime starts a timer and returns a value whose End() records the
// elapsed time:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		key:   mt.pkgName + `.` + key,
		bump:  mt.datadog.BumpHistogram,
		tags:  tags,
	}
}

type timeTracker struct {
	start time.Time
	key   string
	bump  func(string, float64, ...string)
	tags  []string
}

func (t *timeTracker) End() {
	d := time.Since(t.start)
	msec := float64(d/time.Millisecond) + float64(d%time.Millisecond)*1e-6
	t.bump(t.key, msec, t.tags...)
}
