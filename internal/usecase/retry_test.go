package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
)

func TestRetryTransientExhaustsAttempts(t *testing.T) {
	var delays []time.Duration
	p := instantRetry(&delays)

	calls := 0
	_, err := p.Do(context.Background(), domain.MsgTextFailed, func(ctx context.Context) (string, error) {
		calls++
		return "", errors.New("googleapi: Error 503: The model is overloaded")
	})

	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
	if want := []time.Duration{2 * time.Second, 4 * time.Second}; !reflect.DeepEqual(delays, want) {
		t.Errorf("expected delays %v, got %v", want, delays)
	}
	var de *domain.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected domain error, got %v", err)
	}
	if de.Code != domain.ErrCodeServiceBusy || de.Message != domain.MsgServiceBusy {
		t.Errorf("unexpected error %+v", de)
	}
}

func TestRetryRateLimitedCategory(t *testing.T) {
	p := instantRetry(nil)

	calls := 0
	_, err := p.Do(context.Background(), domain.MsgImageFailed, func(ctx context.Context) (string, error) {
		calls++
		return "", domain.NewDomainError(domain.ErrCodeRateLimited, "quota", errors.New("Error 429"))
	})

	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
	var de *domain.DomainError
	if !errors.As(err, &de) || de.Code != domain.ErrCodeRateLimited || de.Message != domain.MsgRateLimited {
		t.Errorf("expected rate limited error, got %v", err)
	}
}

func TestRetryNonTransientFailsFast(t *testing.T) {
	var delays []time.Duration
	p := instantRetry(&delays)

	calls := 0
	cause := errors.New("invalid api key")
	_, err := p.Do(context.Background(), domain.MsgImageFailed, func(ctx context.Context) (string, error) {
		calls++
		return "", cause
	})

	if calls != 1 {
		t.Errorf("expected a single attempt, got %d", calls)
	}
	if len(delays) != 0 {
		t.Errorf("expected no waits, got %v", delays)
	}
	var de *domain.DomainError
	if !errors.As(err, &de) || de.Code != domain.ErrCodeExternal || de.Message != domain.MsgImageFailed {
		t.Fatalf("expected generic failure, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestRetrySucceedsOnLaterAttempt(t *testing.T) {
	var delays []time.Duration
	p := instantRetry(&delays)

	calls := 0
	out, err := p.Do(context.Background(), domain.MsgTextFailed, func(ctx context.Context) (string, error) {
		calls++
		if calls < 2 {
			return "", errors.New("model overloaded")
		}
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ok" || calls != 2 {
		t.Errorf("expected ok after 2 attempts, got %q after %d", out, calls)
	}
	if want := []time.Duration{2 * time.Second}; !reflect.DeepEqual(delays, want) {
		t.Errorf("expected delays %v, got %v", want, delays)
	}
}

func TestRetryFirstAttemptSuccess(t *testing.T) {
	calls := 0
	out, err := instantRetry(nil).Do(context.Background(), domain.MsgTextFailed, func(ctx context.Context) (string, error) {
		calls++
		return "first", nil
	})
	if err != nil || out != "first" || calls != 1 {
		t.Errorf("got %q, %v after %d calls", out, err, calls)
	}
}

func TestRetryCancelledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewRetryPolicy(3, time.Hour, testLogger)
	calls := 0
	_, err := p.Do(ctx, domain.MsgTextFailed, func(ctx context.Context) (string, error) {
		calls++
		return "", errors.New("503 unavailable")
	})

	if calls != 1 {
		t.Errorf("expected the wait to stop retries, got %d attempts", calls)
	}
	var de *domain.DomainError
	if !errors.As(err, &de) || de.Code != domain.ErrCodeExternal || !errors.Is(err, context.Canceled) {
		t.Errorf("expected generic failure caused by cancellation, got %v", err)
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureCategory
	}{
		{"nil", nil, FailureGeneric},
		{"overloaded text", errors.New("The model is OVERLOADED"), FailureServiceBusy},
		{"503 text", errors.New("status 503"), FailureServiceBusy},
		{"429 text", errors.New("status 429"), FailureRateLimited},
		{"rate limit text", errors.New("Rate limit exceeded"), FailureRateLimited},
		{"busy code", domain.NewDomainError(domain.ErrCodeServiceBusy, "x", nil), FailureServiceBusy},
		{"rate limited code", domain.NewDomainError(domain.ErrCodeRateLimited, "x", nil), FailureRateLimited},
		{"other", errors.New("permission denied"), FailureGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.err); got != tt.want {
				t.Errorf("Categorize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewRetryPolicyDefaults(t *testing.T) {
	p := NewRetryPolicy(0, -1, nil)
	if p.MaxAttempts != DefaultMaxAttempts || p.BaseDelay != DefaultBaseDelay {
		t.Errorf("unexpected defaults %+v", p)
	}
	if BackoffDelay(3, time.Second) != 3*time.Second {
		t.Errorf("expected linear backoff")
	}
}
