package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// limiterIdleTTL 이 시간 동안 요청이 없던 IP의 Limiter는 정리 대상이 됩니다.
const limiterIdleTTL = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter IP 주소별 Token Bucket(rate.Limiter)을 관리합니다.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	rate     rate.Limit
	burst    int

	now       func() time.Time
	lastSweep time.Time
}

func newIPRateLimiter(requestsPerSecond float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*ipLimiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		now:      time.Now,
	}
}

// allow ip의 토큰을 하나 소비합니다. 토큰이 없으면 false를 반환합니다.
func (i *ipRateLimiter) allow(ip string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	i.sweep(now)

	l, ok := i.limiters[ip]
	if !ok {
		l = &ipLimiter{limiter: rate.NewLimiter(i.rate, i.burst)}
		i.limiters[ip] = l
	}
	l.lastSeen = now

	return l.limiter.AllowN(now, 1)
}

// sweep 오래 사용되지 않은 Limiter를 제거합니다. TTL마다 한 번만 전체를 순회합니다.
func (i *ipRateLimiter) sweep(now time.Time) {
	if now.Sub(i.lastSweep) < limiterIdleTTL {
		return
	}
	i.lastSweep = now

	for ip, l := range i.limiters {
		if now.Sub(l.lastSeen) >= limiterIdleTTL {
			delete(i.limiters, ip)
		}
	}
}

func (i *ipRateLimiter) size() int {
	i.mu.Lock()
	defer i.mu.Unlock()

	return len(i.limiters)
}

// RateLimiting IP 기반 요청 속도 제한 미들웨어를 반환합니다.
// 제한을 초과하면 Retry-After 헤더와 함께 429 Too Many Requests를 반환합니다.
//
//	e.Use(middleware.RateLimiting(20, 40)) // 초당 20 요청, 버스트 40
func RateLimiting(requestsPerSecond float64, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic("[RateLimiting] requestsPerSecond는 양수여야 합니다")
	}
	if burst <= 0 {
		panic("[RateLimiting] burst는 양수여야 합니다")
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)
	retryAfter := strconv.Itoa(max(1, int(1/requestsPerSecond)))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if !limiter.allow(ip) {
				applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn(constants.LogMsgRateLimitExceeded)

				c.Response().Header().Set("Retry-After", retryAfter)

				return ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}
