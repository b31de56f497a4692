package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
)

func newTestAnalysisService(gen *fakeGenerator) *AnalysisService {
	return NewAnalysisService(gen, fakePrompts{}, instantRetry(nil), testLogger)
}

func TestAnalyzeTextRejectsBlankBeforeCalling(t *testing.T) {
	gen := &fakeGenerator{output: "unused"}
	svc := newTestAnalysisService(gen)

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := svc.AnalyzeText(context.Background(), text, domain.TextAnalysisSentiment); !errors.Is(err, domain.ErrEmptyText) {
			t.Errorf("expected ErrEmptyText for %q, got %v", text, err)
		}
	}
	if len(gen.calls) != 0 {
		t.Errorf("expected no upstream calls, got %d", len(gen.calls))
	}
}

func TestAnalyzeTextUnknownType(t *testing.T) {
	gen := &fakeGenerator{}
	_, err := newTestAnalysisService(gen).AnalyzeText(context.Background(), "halo", "summary")
	if !errors.Is(err, domain.ErrUnknownAnalysis) {
		t.Errorf("expected ErrUnknownAnalysis, got %v", err)
	}
	if len(gen.calls) != 0 {
		t.Errorf("expected no upstream calls")
	}
}

func TestAnalyzeText(t *testing.T) {
	gen := &fakeGenerator{output: "Sentimen: Positif"}
	res, err := newTestAnalysisService(gen).AnalyzeText(context.Background(), "Saya senang", domain.TextAnalysisSentiment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Result != "Sentimen: Positif" {
		t.Errorf("unexpected result %q", res.Result)
	}
	if len(gen.calls) != 1 || gen.calls[0].prompt != "text:sentiment:Saya senang" {
		t.Errorf("unexpected calls %+v", gen.calls)
	}
}

func TestAnalyzeTextGenericFailureMessage(t *testing.T) {
	gen := &fakeGenerator{errs: []error{errors.New("connection reset")}}
	_, err := newTestAnalysisService(gen).AnalyzeText(context.Background(), "halo", domain.TextAnalysisLanguage)

	var de *domain.DomainError
	if !errors.As(err, &de) || de.Message != domain.MsgTextFailed {
		t.Errorf("expected text failure message, got %v", err)
	}
}

func TestAnalyzeImage(t *testing.T) {
	img := domain.Image{Data: []byte{1, 2, 3}, MimeType: "image/png"}

	t.Run("animal needs food", func(t *testing.T) {
		gen := &fakeGenerator{}
		_, err := newTestAnalysisService(gen).AnalyzeImage(context.Background(), domain.ImageKindAnimal, img, "  ")
		if !errors.Is(err, domain.ErrEmptyFood) {
			t.Errorf("expected ErrEmptyFood, got %v", err)
		}
		if len(gen.calls) != 0 {
			t.Errorf("expected no upstream calls")
		}
	})

	t.Run("empty image", func(t *testing.T) {
		gen := &fakeGenerator{}
		_, err := newTestAnalysisService(gen).AnalyzeImage(context.Background(), domain.ImageKindPlant, domain.Image{}, "")
		if !errors.Is(err, domain.ErrEmptyImage) {
			t.Errorf("expected ErrEmptyImage, got %v", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		gen := &fakeGenerator{}
		_, err := newTestAnalysisService(gen).AnalyzeImage(context.Background(), "mobil", img, "")
		if !errors.Is(err, domain.ErrUnknownImageKind) {
			t.Errorf("expected ErrUnknownImageKind, got %v", err)
		}
	})

	t.Run("animal", func(t *testing.T) {
		gen := &fakeGenerator{output: "Kucing"}
		res, err := newTestAnalysisService(gen).AnalyzeImage(context.Background(), domain.ImageKindAnimal, img, "ikan")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Result != "Kucing" {
			t.Errorf("unexpected result %q", res.Result)
		}
		if len(gen.calls) != 1 || gen.calls[0].image == nil || gen.calls[0].prompt != "image:hewan:ikan" {
			t.Errorf("unexpected calls %+v", gen.calls)
		}
	})

	t.Run("busy upstream", func(t *testing.T) {
		busy := domain.NewDomainError(domain.ErrCodeServiceBusy, "busy", nil)
		gen := &fakeGenerator{errs: []error{busy, busy, busy}}
		_, err := newTestAnalysisService(gen).AnalyzeImage(context.Background(), domain.ImageKindMedicinal, img, "")
		var de *domain.DomainError
		if !errors.As(err, &de) || de.Message != domain.MsgServiceBusy {
			t.Errorf("expected busy message, got %v", err)
		}
		if len(gen.calls) != 3 {
			t.Errorf("expected 3 attempts, got %d", len(gen.calls))
		}
	})
}

func TestTextSearch(t *testing.T) {
	gen := &fakeGenerator{output: "hasil"}
	svc := newTestAnalysisService(gen)

	if _, err := svc.TextSearch(context.Background(), "Soekarno", " "); !errors.Is(err, domain.ErrEmptyTextSearch) {
		t.Errorf("expected ErrEmptyTextSearch, got %v", err)
	}
	if _, err := svc.TextSearch(context.Background(), "", "prompt"); !errors.Is(err, domain.ErrEmptyTextSearch) {
		t.Errorf("expected ErrEmptyTextSearch, got %v", err)
	}
	if len(gen.calls) != 0 {
		t.Fatalf("expected no upstream calls")
	}

	res, err := svc.TextSearch(context.Background(), "Soekarno", "ceritakan Soekarno")
	if err != nil || res.Result != "hasil" {
		t.Fatalf("unexpected result %v, %v", res, err)
	}
	if gen.calls[0].prompt != "ceritakan Soekarno" {
		t.Errorf("prompt should be sent as is, got %q", gen.calls[0].prompt)
	}
}

func TestSearchHistory(t *testing.T) {
	t.Run("blank", func(t *testing.T) {
		gen := &fakeGenerator{}
		if _, err := newTestAnalysisService(gen).SearchHistory(context.Background(), "  "); !errors.Is(err, domain.ErrEmptyHistory) {
			t.Errorf("expected ErrEmptyHistory, got %v", err)
		}
		if len(gen.calls) != 0 {
			t.Errorf("expected no upstream calls")
		}
	})

	t.Run("direct", func(t *testing.T) {
		gen := &fakeGenerator{output: "Presiden pertama"}
		res, err := newTestAnalysisService(gen).SearchHistory(context.Background(), "Soekarno")
		if err != nil || res.Result != "Presiden pertama" {
			t.Fatalf("unexpected result %v, %v", res, err)
		}
		if len(gen.calls) != 1 || gen.calls[0].prompt != "search:Soekarno" {
			t.Errorf("unexpected calls %+v", gen.calls)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		gen := &fakeGenerator{errs: []error{errors.New("bad request")}, output: "Kata kunci"}
		res, err := newTestAnalysisService(gen).SearchHistory(context.Background(), "Diponegoro")
		if err != nil || res.Result != "Kata kunci" {
			t.Fatalf("unexpected result %v, %v", res, err)
		}
		if len(gen.calls) != 2 || gen.calls[1].prompt != "text:keywords:fallback:Diponegoro" {
			t.Errorf("unexpected calls %+v", gen.calls)
		}
	})

	t.Run("not found", func(t *testing.T) {
		gen := &fakeGenerator{errs: []error{errors.New("bad request"), errors.New("bad request")}}
		_, err := newTestAnalysisService(gen).SearchHistory(context.Background(), "Diponegoro")
		var de *domain.DomainError
		if !errors.As(err, &de) || de.Code != domain.ErrCodeNotFound || de.Message != domain.MsgHistoryNotFound {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}
