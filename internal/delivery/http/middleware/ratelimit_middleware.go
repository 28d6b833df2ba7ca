package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"citamed-backend/config"
	"citamed-backend/pkg/response"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimitMiddleware throttles the authentication endpoints per client IP
// to slow down credential stuffing and registration abuse.
type RateLimitMiddleware struct {
	rate  rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*clientLimiter
}

func NewRateLimitMiddleware(cfg config.RateLimitConfig) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		rate:     rate.Limit(float64(cfg.AuthPerMinute) / 60.0),
		burst:    cfg.AuthBurst,
		limiters: make(map[string]*clientLimiter),
	}

	go m.cleanupLoop()

	return m
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		if !m.getOrCreateLimiter(ip).Allow() {
			logrus.Warnf("Rate limit exceeded for %s on %s", ip, r.URL.Path)
			response.Error(w, http.StatusTooManyRequests, "Too many requests, try again later", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) getOrCreateLimiter(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	cl, ok := m.limiters[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(m.rate, m.burst)}
		m.limiters[ip] = cl
	}
	cl.lastAccess = time.Now()

	return cl.limiter
}

// cleanupLoop drops limiters idle for more than ten minutes so the map does
// not grow without bound.
func (m *RateLimitMiddleware) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-10 * time.Minute)

		m.mu.Lock()
		for ip, cl := range m.limiters {
			if cl.lastAccess.Before(cutoff) {
				delete(m.limiters, ip)
			}
		}
		m.mu.Unlock()
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
