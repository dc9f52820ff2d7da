package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yaroslav/azrest/server/internal/ratelimit"
)

// Remaining-budget headers ARM returns on every subscription request.
const (
	HeaderRemainingReads  = "x-ms-ratelimit-remaining-subscription-reads"
	HeaderRemainingWrites = "x-ms-ratelimit-remaining-subscription-writes"
)

// tenantKey identifies requests without a subscription segment.
const tenantKey = "tenant"

// Throttler applies ARM request budgets with Retry-After headers.
//
// Reads (GET, HEAD) and writes (PUT, PATCH, DELETE, POST) draw from
// separate per-subscription buckets. Authentication failures draw from a
// per-IP bucket.
type Throttler struct {
	limiter *ratelimit.Limiter
}

// NewThrottler creates a new Throttler.
func NewThrottler(config ratelimit.Config) *Throttler {
	return &Throttler{
		limiter: ratelimit.NewLimiter(config),
	}
}

// Subscription throttles requests by the subscription in their path.
func (t *Throttler) Subscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		limitType, header := ratelimit.LimitTypeRead, HeaderRemainingReads
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
		default:
			limitType, header = ratelimit.LimitTypeWrite, HeaderRemainingWrites
		}

		subscription := SubscriptionFromPath(c.Request.URL.Path)
		if subscription == "" {
			subscription = tenantKey
		}

		decision := t.limiter.Allow(ratelimit.BuildKey(subscription, limitType), limitType)
		if !decision.Allowed {
			c.Header("Retry-After", strconv.Itoa(decision.RetryAfter))
			c.Header(header, "0")
			abortWithError(c, http.StatusTooManyRequests, CodeTooManyRequests,
				fmt.Sprintf("Number of %s requests for subscription '%s' exceeded the limit. Please try again after %d seconds.",
					limitType, subscription, decision.RetryAfter))
			return
		}

		c.Header(header, strconv.Itoa(decision.Remaining))
		c.Next()
	}
}

// AuthFailure records one failed authentication from the client IP.
func (t *Throttler) AuthFailure(c *gin.Context) ratelimit.Decision {
	key := ratelimit.BuildKey(c.ClientIP(), ratelimit.LimitTypeAuthFailure)
	return t.limiter.Allow(key, ratelimit.LimitTypeAuthFailure)
}

// Stop gracefully stops the rate limiter.
func (t *Throttler) Stop() {
	t.limiter.Stop()
}

// SubscriptionFromPath returns the lowercase subscription ID of an ARM
// path, or an empty string.
func SubscriptionFromPath(path string) string {
	segs := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 3)
	if len(segs) < 2 || !strings.EqualFold(segs[0], "subscriptions") {
		return ""
	}
	return strings.ToLower(segs[1])
}
