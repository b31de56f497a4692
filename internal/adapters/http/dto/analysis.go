package dto

type TextSearchRequest struct {
	Query  string `json:"query"`
	Prompt string `json:"prompt"`
}

type ImageAnalysisRequest struct {
	Kind        string `json:"kind" validate:"required,oneof=hewan tumbuhan obat sejarah"`
	ImageBase64 string `json:"image_base64" validate:"required"`
	MimeType    string `json:"mime_type" validate:"omitempty,max=100"`
	Food        string `json:"food" validate:"omitempty,max=200"`
}

type TextAnalysisRequest struct {
	Text         string `json:"text" validate:"required,notblank,max=20000"`
	AnalysisType string `json:"analysis_type" validate:"required,oneof=sentiment language keywords factargument"`
}

type HistorySearchRequest struct {
	Query string `json:"query" validate:"required,notblank,max=500"`
}

type AnalysisResponse struct {
	Result string `json:"result"`
}
