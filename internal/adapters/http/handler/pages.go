package handler

import (
	"html/template"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
)

type Page struct {
	Path     string
	Title    string
	Subtitle string
	Icon     string
	Theme    string
}

var imagePages = map[domain.ImageKind]Page{
	domain.ImageKindAnimal: {
		Path:     "/deteksi-hewan",
		Title:    "Deteksi Hewan",
		Subtitle: "Upload foto hewan dan cek apakah makanannya cocok",
		Icon:     "🐾",
		Theme:    "orange",
	},
	domain.ImageKindPlant: {
		Path:     "/deteksi-tumbuhan",
		Title:    "Deteksi Tumbuhan",
		Subtitle: "Kenali jenis tumbuhan, ciri khas, dan cara merawatnya",
		Icon:     "🌱",
		Theme:    "green",
	},
	domain.ImageKindMedicinal: {
		Path:     "/deteksi-obat",
		Title:    "Deteksi Tumbuhan Obat",
		Subtitle: "Cek khasiat dan keamanan tumbuhan obat herbal",
		Icon:     "🌿",
		Theme:    "emerald",
	},
	domain.ImageKindHistorical: {
		Path:     "/deteksi-sejarah",
		Title:    "Deteksi Sejarah",
		Subtitle: "Identifikasi tokoh dan peristiwa bersejarah dari gambar atau nama",
		Icon:     "🏛️",
		Theme:    "amber",
	},
}

var textPage = Page{
	Path:     "/deteksi-teks",
	Title:    "Deteksi Teks",
	Subtitle: "Analisis teks untuk sentimen, bahasa, dan ekstraksi kata kunci",
	Icon:     "📝",
	Theme:    "purple",
}

var countryPage = Page{
	Path:     "/deteksi-negara",
	Title:    "Pencarian Negara Dunia",
	Subtitle: "Cari informasi lengkap tentang negara-negara di dunia",
	Icon:     "🌍",
	Theme:    "blue",
}

type AnalysisOption struct {
	Value string
	Label string
}

var analysisOptions = []AnalysisOption{
	{Value: string(domain.TextAnalysisSentiment), Label: "Analisis Sentimen"},
	{Value: string(domain.TextAnalysisLanguage), Label: "Deteksi Bahasa"},
	{Value: string(domain.TextAnalysisKeywords), Label: "Ekstraksi Kata Kunci"},
	{Value: string(domain.TextAnalysisFactArgument), Label: "Fakta atau Argumen"},
}

type PageData struct {
	Page         Page
	Kind         string
	Pages        []Page
	Result       string
	Error        string
	Food         string
	Query        string
	Text         string
	AnalysisType string
	Options      []AnalysisOption
	ImagePreview template.URL
	Countries    []domain.CountryProfile
}

func homePages() []Page {
	order := []domain.ImageKind{domain.ImageKindAnimal, domain.ImageKindPlant, domain.ImageKindMedicinal, domain.ImageKindHistorical}
	pages := make([]Page, 0, len(order)+2)
	for _, kind := range order {
		pages = append(pages, imagePages[kind])
	}
	return append(pages, textPage, countryPage)
}
