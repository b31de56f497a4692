package domain

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
)

type ImageKind string

const (
	ImageKindAnimal     ImageKind = "hewan"
	ImageKindPlant      ImageKind = "tumbuhan"
	ImageKindMedicinal  ImageKind = "obat"
	ImageKindHistorical ImageKind = "sejarah"
)

func (k ImageKind) Valid() bool {
	switch k {
	case ImageKindAnimal, ImageKindPlant, ImageKindMedicinal, ImageKindHistorical:
		return true
	}
	return false
}

type TextAnalysisType string

const (
	TextAnalysisSentiment    TextAnalysisType = "sentiment"
	TextAnalysisLanguage     TextAnalysisType = "language"
	TextAnalysisKeywords     TextAnalysisType = "keywords"
	TextAnalysisFactArgument TextAnalysisType = "factargument"
)

func (t TextAnalysisType) Valid() bool {
	switch t {
	case TextAnalysisSentiment, TextAnalysisLanguage, TextAnalysisKeywords, TextAnalysisFactArgument:
		return true
	}
	return false
}

const DefaultImageMimeType = "image/jpeg"

type Image struct {
	Data     []byte
	MimeType string
}

// NewImage sniffs the mime type when the caller does not know it.
func NewImage(data []byte, mimeType string) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrEmptyImage
	}
	mimeType = strings.TrimSpace(strings.ToLower(mimeType))
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
		if !strings.HasPrefix(mimeType, "image/") {
			mimeType = DefaultImageMimeType
		}
	}
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return Image{}, ErrNotAnImage
	}
	return Image{Data: data, MimeType: mimeType}, nil
}

// DecodeImageBase64 accepts either raw base64 or a data url such as
// "data:image/png;base64,iVBOR...". The mime type of a data url wins over mimeType.
func DecodeImageBase64(encoded, mimeType string) (Image, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return Image{}, ErrEmptyImage
	}

	if strings.HasPrefix(encoded, "data:") {
		header, payload, found := strings.Cut(encoded, ",")
		if !found {
			return Image{}, ErrInvalidBase64
		}
		header = strings.TrimPrefix(header, "data:")
		header = strings.TrimSuffix(header, ";base64")
		if header != "" {
			mimeType = header
		}
		encoded = payload
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(encoded)
		if err != nil {
			return Image{}, NewDomainError(ErrCodeValidation, ErrInvalidBase64.Message, err)
		}
	}
	return NewImage(data, mimeType)
}

func (i Image) Base64() string {
	return base64.StdEncoding.EncodeToString(i.Data)
}

type AnalysisResult struct {
	Result string `json:"result"`
}

type ContentGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateFromImage(ctx context.Context, prompt string, image Image) (string, error)
}

type PromptRepository interface {
	ImagePrompt(kind ImageKind, food string) (string, error)
	TextPrompt(analysis TextAnalysisType, text string) (string, error)
	HistorySearchPrompt(query string) string
	HistoryFallbackPrompt(query string) string
}

type RateLimiter interface {
	AllowRequest(ctx context.Context, key string) (bool, error)
}
