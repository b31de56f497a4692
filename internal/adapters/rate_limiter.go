package adapters

import (
	"context"
	"sync"
	"time"
)

type RateLimiter struct {
	Capacity      float64
	FillRate      float64
	CurrentTokens float64
	LastUpdate    time.Time
	mutx          sync.Mutex
}

// IPRateLimiter keeps one token bucket per client ip in process memory. It is
// used when no redis is configured.
type IPRateLimiter struct {
	Capacity float64
	FillRate float64
	Now      func() time.Time
	limiter  map[string]*RateLimiter
	mutx     sync.Mutex
}

func NewRateLimiter(capacity, fillrate float64, now time.Time) *RateLimiter {
	return &RateLimiter{
		Capacity:      capacity,
		FillRate:      fillrate,
		CurrentTokens: capacity,
		LastUpdate:    now,
	}
}

func NewIpLimiter(capacity, fillrate float64) *IPRateLimiter {
	return &IPRateLimiter{
		Capacity: capacity,
		FillRate: fillrate,
		Now:      time.Now,
		limiter:  make(map[string]*RateLimiter),
	}
}

func (r *RateLimiter) RefillBucket(now time.Time) {
	elapsedTime := now.Sub(r.LastUpdate).Seconds()
	if elapsedTime < 0 {
		elapsedTime = 0
	}
	TokensToAdd := elapsedTime * r.FillRate

	r.CurrentTokens += TokensToAdd
	if r.CurrentTokens > r.Capacity {
		r.CurrentTokens = r.Capacity
	}

	r.LastUpdate = now
}

func (r *RateLimiter) Allow(now time.Time) bool {
	r.mutx.Lock()
	defer r.mutx.Unlock()

	r.RefillBucket(now)

	if r.CurrentTokens >= 1 {
		r.CurrentTokens -= 1
		return true
	}

	return false
}

func (i *IPRateLimiter) RequestRateLimiter(ip string) *RateLimiter {
	i.mutx.Lock()
	defer i.mutx.Unlock()

	limiter, exist := i.limiter[ip]
	if !exist {
		limiter = NewRateLimiter(i.Capacity, i.FillRate, i.Now())
		i.limiter[ip] = limiter
	}

	return limiter
}

func (i *IPRateLimiter) AllowRequest(_ context.Context, ip string) (bool, error) {
	return i.RequestRateLimiter(ip).Allow(i.Now()), nil
}
