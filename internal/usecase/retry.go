package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
	"github.com/KianoushAmirpour/detection_server/internal/observability"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 2 * time.Second
)

type FailureCategory int

const (
	FailureGeneric FailureCategory = iota
	FailureServiceBusy
	FailureRateLimited
)

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

func ContextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RetryPolicy retries transient upstream failures with a linear delay of
// attempt * BaseDelay between attempts.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Sleep       SleepFunc
	Logger      domain.LoggingRepository
}

func NewRetryPolicy(maxattempts int, basedelay time.Duration, logger domain.LoggingRepository) RetryPolicy {
	if maxattempts <= 0 {
		maxattempts = DefaultMaxAttempts
	}
	if basedelay < 0 {
		basedelay = DefaultBaseDelay
	}
	return RetryPolicy{MaxAttempts: maxattempts, BaseDelay: basedelay, Sleep: ContextSleep, Logger: logger}
}

// Do runs fn until it succeeds, fails with a non transient error or runs out
// of attempts. failMsg is the message of the generic failure category.
func (p RetryPolicy) Do(ctx context.Context, failMsg string, fn func(ctx context.Context) (string, error)) (string, error) {
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = ContextSleep
	}

	log := p.log().With("http.request.id", observability.GetRequestID(ctx))

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		output, err := fn(ctx)
		if err == nil {
			return output, nil
		}
		lastErr = err
		log.Warn("upstream attempt failed",
			"event.action", "generate_content",
			"event.outcome", "failed",
			"retry.attempt", attempt,
			"error.message", err.Error())

		if !IsTransient(err) || attempt == maxAttempts {
			break
		}

		delay := BackoffDelay(attempt, p.BaseDelay)
		log.Info("model overloaded, waiting before next attempt",
			"retry.attempt", attempt,
			"retry.delay_ms", delay.Milliseconds())
		if err := sleep(ctx, delay); err != nil {
			return "", domain.NewDomainError(domain.ErrCodeExternal, failMsg, err)
		}
	}

	return "", failureError(lastErr, failMsg)
}

// BackoffDelay grows linearly: base, 2*base, 3*base...
func BackoffDelay(attempt int, base time.Duration) time.Duration {
	return time.Duration(attempt) * base
}

func (p RetryPolicy) log() domain.LoggingRepository {
	if p.Logger == nil {
		return nopLogger{}
	}
	return p.Logger
}

func failureError(err error, failMsg string) *domain.DomainError {
	switch Categorize(err) {
	case FailureServiceBusy:
		return domain.NewDomainError(domain.ErrCodeServiceBusy, domain.MsgServiceBusy, err)
	case FailureRateLimited:
		return domain.NewDomainError(domain.ErrCodeRateLimited, domain.MsgRateLimited, err)
	default:
		return domain.NewDomainError(domain.ErrCodeExternal, failMsg, err)
	}
}

// IsTransient reports whether err signals an overloaded or rate limited upstream.
// Adapters report it through the domain error code, anything else is matched on
// the error text.
func IsTransient(err error) bool {
	return Categorize(err) != FailureGeneric
}

func Categorize(err error) FailureCategory {
	if err == nil {
		return FailureGeneric
	}
	var de *domain.DomainError
	if errors.As(err, &de) {
		switch de.Code {
		case domain.ErrCodeServiceBusy:
			return FailureServiceBusy
		case domain.ErrCodeRateLimited:
			return FailureRateLimited
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "overloaded"), strings.Contains(msg, "503"):
		return FailureServiceBusy
	case strings.Contains(msg, "429"), strings.Contains(msg, "rate limit"):
		return FailureRateLimited
	}
	return FailureGeneric
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})                     {}
func (nopLogger) Warn(string, ...interface{})                     {}
func (nopLogger) Error(string, ...interface{})                    {}
func (n nopLogger) With(...interface{}) domain.LoggingRepository { return n }
