package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
	"github.com/KianoushAmirpour/detection_server/pkg/logger"
)

var testLogger = logger.NewLoggerWithWriter(io.Discard)

type generatorCall struct {
	prompt string
	image  *domain.Image
}

// fakeGenerator answers with the queued errors first, then with output.
type fakeGenerator struct {
	errs   []error
	output string
	calls  []generatorCall
}

func (f *fakeGenerator) next() (string, error) {
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return "", err
		}
	}
	return f.output, nil
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls = append(f.calls, generatorCall{prompt: prompt})
	return f.next()
}

func (f *fakeGenerator) GenerateFromImage(ctx context.Context, prompt string, image domain.Image) (string, error) {
	f.calls = append(f.calls, generatorCall{prompt: prompt, image: &image})
	return f.next()
}

type fakePrompts struct{}

func (fakePrompts) ImagePrompt(kind domain.ImageKind, food string) (string, error) {
	if !kind.Valid() {
		return "", domain.ErrUnknownImageKind
	}
	return fmt.Sprintf("image:%s:%s", kind, food), nil
}

func (fakePrompts) TextPrompt(analysis domain.TextAnalysisType, text string) (string, error) {
	if !analysis.Valid() {
		return "", domain.ErrUnknownAnalysis
	}
	return fmt.Sprintf("text:%s:%s", analysis, text), nil
}

func (fakePrompts) HistorySearchPrompt(query string) string   { return "search:" + query }
func (fakePrompts) HistoryFallbackPrompt(query string) string { return "fallback:" + query }

// instantRetry records the requested delays without waiting.
func instantRetry(delays *[]time.Duration) RetryPolicy {
	p := NewRetryPolicy(DefaultMaxAttempts, DefaultBaseDelay, testLogger)
	p.Sleep = func(ctx context.Context, d time.Duration) error {
		if delays != nil {
			*delays = append(*delays, d)
		}
		return ctx.Err()
	}
	return p
}
