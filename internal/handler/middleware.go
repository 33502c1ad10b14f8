package handler

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SecurityHeaders adds security response headers to every JSON response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// RateLimiter provides IP-based rate limiting using a sliding one-minute window.
type RateLimiter struct {
	maxPerMinute      int
	trustedProxyCount int
	now               func() time.Time

	mu      sync.Mutex
	clients map[string][]time.Time

	done     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a rate limiter allowing maxPerMinute requests per
// client. trustedProxies is the number of reverse proxies in front of the
// server whose X-Forwarded-For entries can be trusted; 0 uses RemoteAddr only.
func NewRateLimiter(maxPerMinute, trustedProxies int) *RateLimiter {
	rl := &RateLimiter{
		maxPerMinute:      maxPerMinute,
		trustedProxyCount: trustedProxies,
		now:               time.Now,
		clients:           make(map[string][]time.Time),
		done:              make(chan struct{}),
	}
	go rl.cleanupLoop(5 * time.Minute)
	return rl
}

// Close stops the background cleanup goroutine.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			windowStart := rl.now().Add(-time.Minute)
			for ip, stamps := range rl.clients {
				if stamps = prune(stamps, windowStart); len(stamps) == 0 {
					delete(rl.clients, ip)
				} else {
					rl.clients[ip] = stamps
				}
			}
			rl.mu.Unlock()
		}
	}
}

// prune drops timestamps at or before windowStart, filtering in place.
func prune(stamps []time.Time, windowStart time.Time) []time.Time {
	valid := stamps[:0]
	for _, ts := range stamps {
		if ts.After(windowStart) {
			valid = append(valid, ts)
		}
	}
	return valid
}

// Middleware returns an http.Handler that enforces the limit.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientIP(r)
		now := rl.now()

		rl.mu.Lock()
		stamps := prune(rl.clients[ip], now.Add(-time.Minute))
		if len(stamps) >= rl.maxPerMinute {
			retryAfter := stamps[0].Add(time.Minute).Sub(now)
			rl.clients[ip] = stamps
			rl.mu.Unlock()

			slog.WarnContext(r.Context(), "rate limit exceeded", "client_ip", ip, "path", r.URL.Path)
			w.Header().Set("Retry-After", retryAfterSeconds(retryAfter))
			writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
			return
		}
		rl.clients[ip] = append(stamps, now)
		rl.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(d time.Duration) string {
	secs := int(d.Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// clientIP extracts the client IP, reading X-Forwarded-For from the
// rightmost trusted proxy position so leftmost entries cannot be spoofed.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && rl.trustedProxyCount > 0 {
		parts := strings.Split(xff, ",")
		idx := len(parts) - rl.trustedProxyCount
		if idx >= 0 && idx < len(parts) {
			return strings.TrimSpace(parts[idx])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
