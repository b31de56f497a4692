package ai

import (
	"strings"
	"testing"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
)

func TestImagePrompts(t *testing.T) {
	p := Prompts{}

	animal, err := p.ImagePrompt(domain.ImageKindAnimal, "ikan asin")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(animal, "MAKANAN: ikan asin") {
		t.Errorf("animal prompt should carry the food, got %q", animal)
	}

	for _, kind := range []domain.ImageKind{domain.ImageKindAnimal, domain.ImageKindPlant, domain.ImageKindMedicinal, domain.ImageKindHistorical} {
		prompt, err := p.ImagePrompt(kind, "nasi")
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if prompt == "" || strings.Contains(prompt, "%!") || strings.Contains(prompt, "%%") {
			t.Errorf("%s prompt is badly formatted", kind)
		}
	}

	if _, err := p.ImagePrompt("mobil", ""); err != domain.ErrUnknownImageKind {
		t.Errorf("expected ErrUnknownImageKind, got %v", err)
	}
}

func TestTextPrompts(t *testing.T) {
	p := Prompts{}
	for _, analysis := range []domain.TextAnalysisType{
		domain.TextAnalysisSentiment,
		domain.TextAnalysisLanguage,
		domain.TextAnalysisKeywords,
		domain.TextAnalysisFactArgument,
	} {
		prompt, err := p.TextPrompt(analysis, "Jakarta adalah ibu kota")
		if err != nil {
			t.Fatalf("%s: %v", analysis, err)
		}
		if !strings.Contains(prompt, `Teks: "Jakarta adalah ibu kota"`) {
			t.Errorf("%s prompt should quote the text", analysis)
		}
		if strings.Contains(prompt, "%!") || strings.Contains(prompt, "%%") {
			t.Errorf("%s prompt is badly formatted", analysis)
		}
	}

	if _, err := p.TextPrompt("summary", "x"); err != domain.ErrUnknownAnalysis {
		t.Errorf("expected ErrUnknownAnalysis, got %v", err)
	}
}

func TestHistoryPrompts(t *testing.T) {
	p := Prompts{}

	search := p.HistorySearchPrompt("Cut Nyak Dhien")
	if strings.Count(search, `"Cut Nyak Dhien"`) != 2 {
		t.Errorf("history search prompt should name the query twice, got %q", search)
	}
	if strings.Contains(search, "%!") {
		t.Errorf("history search prompt is badly formatted")
	}

	if fallback := p.HistoryFallbackPrompt("Kartini"); !strings.Contains(fallback, `"Kartini"`) {
		t.Errorf("fallback prompt should name the query, got %q", fallback)
	}
}
