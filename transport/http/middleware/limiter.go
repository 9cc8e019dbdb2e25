package middleware

import (
	"fieldserve/shared"
	"fieldserve/shared/actor"
	"fieldserve/shared/constant"
	"fieldserve/shared/timezone"
	"fieldserve/transport/http/response"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit counts requests per caller in fixed windows. Authenticated callers are keyed by
// actor id, anonymous ones by client address. The system actor is never limited. Must run after Auth.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			caller := actor.FromContext(r.Context())
			if !a.config.App.RateLimiter.Enable || windowSecs <= 0 || caller == actor.System {
				next.ServeHTTP(w, r)

				return
			}

			subject := "ip:" + a.getClientIP(r)
			if !caller.IsZero() {
				subject = "actor:" + caller.ID
			}

			window := timezone.Now().Unix() / int64(windowSecs)
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, subject, strconv.FormatInt(window, 10))

			count, err := a.cache.Increment(r.Context(), cacheKey, time.Duration(windowSecs)*time.Second)
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(maxReqs)-count), 10))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			if count > int64(maxReqs) {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP relies on chi's RealIP middleware having rewritten RemoteAddr from proxy headers.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
