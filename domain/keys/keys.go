package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis keys
	PfxHealthCheck = "healthcheck"
	// PfxHttpCache is used for prefixing cached http responses
	PfxHttpCache = "httpcache"
)

// CustomKey joins key components with the specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey joins redis key components with ":"
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix returns the leading component of a redis key, for metric tags.
func GetPrefix(key string) string {
	if i := strings.Index(key, ":"); i >= 0 {
		return key[:i]
	}
	return key
}
