package ai

import (
	"context"
	"errors"
	"net/http"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-1.5-flash"

type GemeniClient struct {
	Client *genai.Client
	Model  string
}

// NewGemeniClient talks to the Gemini developer api. baseURL is only set to
// point the client at a proxy or a test server.
func NewGemeniClient(ctx context.Context, apikey, model, baseURL string, httpClient *http.Client) (*GemeniClient, error) {
	if model == "" {
		model = DefaultModel
	}
	cfg := &genai.ClientConfig{
		APIKey:     apikey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeInternal, "failed to create gemeni client", err)
	}
	return &GemeniClient{Client: client, Model: model}, nil
}

func (g GemeniClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := g.Client.Models.GenerateContent(
		ctx,
		g.Model,
		genai.Text(prompt),
		nil)
	if err != nil {
		return "", mapGenaiErr(err)
	}
	return result.Text(), nil
}

func (g GemeniClient) GenerateFromImage(ctx context.Context, prompt string, image domain.Image) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(image.Data, image.MimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := g.Client.Models.GenerateContent(ctx, g.Model, contents, nil)
	if err != nil {
		return "", mapGenaiErr(err)
	}
	return result.Text(), nil
}

func mapGenaiErr(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusServiceUnavailable:
			return domain.NewDomainError(domain.ErrCodeServiceBusy, "gemini model is overloaded", err)
		case http.StatusTooManyRequests:
			return domain.NewDomainError(domain.ErrCodeRateLimited, "gemini rate limit reached", err)
		}
	}
	return domain.NewDomainError(domain.ErrCodeExternal, "failed to generate content from ai model", err)
}
