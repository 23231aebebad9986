package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter tracks a token bucket per client IP.
type Limiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
}

func NewLimiter(r rate.Limit, burst int) *Limiter {
	return &Limiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    burst,
	}
}

// Allow reports whether the given IP may proceed.
func (l *Limiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (l *Limiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, v := range l.visitors {
		if time.Since(v.lastSeen) > 5*time.Minute {
			delete(l.visitors, ip)
		}
	}
}

// Reset drops all tracked visitors. Test helper.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.visitors = make(map[string]*visitor)
}

// Default limiter guards the auth endpoints: 5 attempts/sec, burst of 20.
var defaultLimiter = NewLimiter(5, 20)

func Allow(ip string) bool {
	return defaultLimiter.Allow(ip)
}

func StartVisitorCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		defaultLimiter.cleanup()
	}
}

func Reset() {
	defaultLimiter.Reset()
}
