package httpx

import (
	"math/rand"
	"net/http"
	"time"
)

// IsRetryableHTTPStatus reports whether an upstream status is worth retrying:
// timeouts, rate limits, and server errors.
func IsRetryableHTTPStatus(code int) bool {
	if code == http.StatusRequestTimeout || code == http.StatusTooManyRequests {
		return true
	}
	return code >= 500 && code <= 599
}

// JitterSleep spreads base by +/-20% so concurrent retries do not align.
func JitterSleep(base time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	delta := float64(base) * 0.2
	return time.Duration(float64(base) - delta + rand.Float64()*2*delta)
}
