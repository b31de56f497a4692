package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
)

type AnalysisService struct {
	AI      domain.ContentGenerator
	Prompts domain.PromptRepository
	Retry   RetryPolicy
	Logger  domain.LoggingRepository
}

func NewAnalysisService(
	ai domain.ContentGenerator,
	prompts domain.PromptRepository,
	retry RetryPolicy,
	logger domain.LoggingRepository,
) *AnalysisService {
	return &AnalysisService{AI: ai, Prompts: prompts, Retry: retry, Logger: logger}
}

func (s *AnalysisService) AnalyzeImage(ctx context.Context, kind domain.ImageKind, image domain.Image, food string) (*domain.AnalysisResult, error) {
	log := s.Logger.With("service.name", "image_analysis", "analysis.kind", string(kind))

	if !kind.Valid() {
		return nil, domain.ErrUnknownImageKind
	}
	if len(image.Data) == 0 {
		return nil, domain.ErrEmptyImage
	}
	food = strings.TrimSpace(food)
	if kind == domain.ImageKindAnimal && food == "" {
		return nil, domain.ErrEmptyFood
	}

	prompt, err := s.Prompts.ImagePrompt(kind, food)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	output, err := s.Retry.Do(ctx, domain.MsgImageFailed, func(ctx context.Context) (string, error) {
		return s.AI.GenerateFromImage(ctx, prompt, image)
	})
	if err != nil {
		log.Error("failed to analyze image",
			"event.action", "analyze_image",
			"event.outcome", "failed",
			"error.message", err.Error(),
			"event.duration", time.Since(start).Nanoseconds())
		return nil, err
	}

	log.Info("image analyzed", "event.outcome", "success", "image.size", len(image.Data), "event.duration", time.Since(start).Nanoseconds())
	return &domain.AnalysisResult{Result: output}, nil
}

func (s *AnalysisService) AnalyzeText(ctx context.Context, text string, analysis domain.TextAnalysisType) (*domain.AnalysisResult, error) {
	log := s.Logger.With("service.name", "text_analysis", "analysis.type", string(analysis))

	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyText
	}
	if !analysis.Valid() {
		return nil, domain.ErrUnknownAnalysis
	}

	prompt, err := s.Prompts.TextPrompt(analysis, text)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	output, err := s.Retry.Do(ctx, domain.MsgTextFailed, func(ctx context.Context) (string, error) {
		return s.AI.GenerateText(ctx, prompt)
	})
	if err != nil {
		log.Error("failed to analyze text",
			"event.action", "analyze_text",
			"event.outcome", "failed",
			"error.message", err.Error(),
			"event.duration", time.Since(start).Nanoseconds())
		return nil, err
	}

	log.Info("text analyzed", "event.outcome", "success", "event.duration", time.Since(start).Nanoseconds())
	return &domain.AnalysisResult{Result: output}, nil
}

// TextSearch sends a caller supplied prompt as is.
func (s *AnalysisService) TextSearch(ctx context.Context, query, prompt string) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(query) == "" || strings.TrimSpace(prompt) == "" {
		return nil, domain.ErrEmptyTextSearch
	}

	output, err := s.Retry.Do(ctx, domain.MsgTextSearchFailed, func(ctx context.Context) (string, error) {
		return s.AI.GenerateText(ctx, prompt)
	})
	if err != nil {
		s.Logger.Error("failed to search text",
			"service.name", "text_search",
			"event.action", "text_search",
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}
	return &domain.AnalysisResult{Result: output}, nil
}

// SearchHistory looks a historical figure or event up by name. When the
// search fails it retries once through the keywords analysis with a shorter
// prompt before giving up.
func (s *AnalysisService) SearchHistory(ctx context.Context, query string) (*domain.AnalysisResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyHistory
	}
	log := s.Logger.With("service.name", "history_search")

	res, err := s.TextSearch(ctx, query, s.Prompts.HistorySearchPrompt(query))
	if err == nil {
		return res, nil
	}
	log.Warn("history search failed, using keywords analysis", "error.message", err.Error())

	res, err = s.AnalyzeText(ctx, s.Prompts.HistoryFallbackPrompt(query), domain.TextAnalysisKeywords)
	if err == nil {
		return res, nil
	}
	log.Error("history fallback failed", "event.outcome", "failed", "error.message", err.Error())
	return nil, domain.NewDomainError(domain.ErrCodeNotFound, domain.MsgHistoryNotFound, err)
}
