package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"

	"connectrpc.com/connect"
	"golang.org/x/time/rate"

	"github.com/mmynk/mvptracker/internal/auth"
	"github.com/mmynk/mvptracker/pkg/api"
)

// maxLimiters caps the number of tracked callers before the table is reset.
const maxLimiters = 10000

var ErrRateLimited = errors.New("rate limit exceeded")

// RateLimiter applies a token bucket per caller to a set of procedures.
type RateLimiter struct {
	procedures map[string]bool
	rate       rate.Limit
	burst      int
	logger     *slog.Logger

	// OnThrottle, if set, is called for every rejected call.
	OnThrottle func(procedure string)

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRateLimiter limits each caller to perMinute calls per minute with the
// given burst, across the listed procedures.
func NewRateLimiter(perMinute float64, burst int, logger *slog.Logger, procedures ...string) *RateLimiter {
	procs := make(map[string]bool, len(procedures))
	for _, p := range procedures {
		procs[p] = true
	}
	return &RateLimiter{
		procedures: procs,
		rate:       rate.Limit(perMinute / 60),
		burst:      burst,
		logger:     logger,
		limiters:   make(map[string]*rate.Limiter),
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.limiters[key]
	if !ok {
		if len(rl.limiters) >= maxLimiters {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		l = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = l
	}
	return l
}

// callerKey uses the identity if known, otherwise the peer host.
func callerKey(ctx context.Context, req connect.AnyRequest) string {
	if identity := auth.Identity(ctx); identity != "" {
		return "id:" + identity
	}
	addr := req.Peer().Addr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return "ip:" + host
	}
	return "ip:" + addr
}

// Interceptor returns the connect interceptor. It must run inside
// Authenticate to key on the identity.
func (rl *RateLimiter) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			procedure := req.Spec().Procedure
			if !rl.procedures[procedure] {
				return next(ctx, req)
			}

			key := callerKey(ctx, req)
			if !rl.limiter(key).Allow() {
				rl.logger.Warn("Rate limit exceeded", "procedure", procedure, "key", key)
				if rl.OnThrottle != nil {
					rl.OnThrottle(procedure)
				}
				return nil, api.NewError(api.KindRateLimited, ErrRateLimited)
			}
			return next(ctx, req)
		}
	}
}
