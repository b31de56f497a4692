package handler

import (
	"errors"
	"html/template"
	"io"
	"net/http"
	"runtime"
	"strings"

	"github.com/KianoushAmirpour/detection_server/internal/adapters/http/dto"
	"github.com/KianoushAmirpour/detection_server/internal/domain"
	"github.com/KianoushAmirpour/detection_server/internal/usecase"
	"github.com/gin-gonic/gin"
)

const (
	msgImageApology = "Maaf, terjadi kesalahan saat menganalisis gambar. Silakan coba lagi."
	msgTextApology  = "Maaf, terjadi kesalahan saat menganalisis teks. Silakan coba lagi."
)

type DetectionHandler struct {
	AnalysisSvc    *usecase.AnalysisService
	CountrySvc     *usecase.CountryService
	RateLimiter    domain.RateLimiter
	Logger         domain.LoggingRepository
	MaxAllowedSize int
	MaxImageSize   int64
}

func NewDetectionHandler(
	analysissvc *usecase.AnalysisService,
	countrysvc *usecase.CountryService,
	ratelimiter domain.RateLimiter,
	logger domain.LoggingRepository,
	maxallowedsize int,
	maximagesize int64,
) *DetectionHandler {
	return &DetectionHandler{AnalysisSvc: analysissvc, CountrySvc: countrysvc, RateLimiter: ratelimiter, Logger: logger,
		MaxAllowedSize: maxallowedsize, MaxImageSize: maximagesize}
}

func (h *DetectionHandler) HomePageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", PageData{Pages: homePages()})
}

func (h *DetectionHandler) ImagePageHandler(kind domain.ImageKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "image.html", PageData{Page: imagePages[kind], Kind: string(kind)})
	}
}

func (h *DetectionHandler) ImageDetectionHandler(kind domain.ImageKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := PageData{Page: imagePages[kind], Kind: string(kind), Food: strings.TrimSpace(c.PostForm("food"))}

		image, err := h.readUploadedImage(c)
		if err != nil {
			h.renderPageError(c, "image.html", data, err, msgImageApology)
			return
		}
		data.ImagePreview = template.URL("data:" + image.MimeType + ";base64," + image.Base64())

		res, err := h.AnalysisSvc.AnalyzeImage(c.Request.Context(), kind, image, data.Food)
		if err != nil {
			h.renderPageError(c, "image.html", data, err, msgImageApology)
			return
		}
		data.Result = res.Result
		h.Logger.Info("http_request_end", "http.request.id", c.GetString("RequestID"), "status", http.StatusOK)
		c.HTML(http.StatusOK, "image.html", data)
	}
}

func (h *DetectionHandler) HistorySearchPageHandler(c *gin.Context) {
	data := PageData{Page: imagePages[domain.ImageKindHistorical], Kind: string(domain.ImageKindHistorical), Query: strings.TrimSpace(c.PostForm("query"))}

	res, err := h.AnalysisSvc.SearchHistory(c.Request.Context(), data.Query)
	if err != nil {
		h.renderPageError(c, "image.html", data, err, domain.MsgHistoryNotFound)
		return
	}
	data.Result = res.Result
	c.HTML(http.StatusOK, "image.html", data)
}

func (h *DetectionHandler) TextPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "text.html", PageData{Page: textPage, Options: analysisOptions, AnalysisType: string(domain.TextAnalysisSentiment)})
}

func (h *DetectionHandler) TextAnalysisPageHandler(c *gin.Context) {
	data := PageData{
		Page:         textPage,
		Options:      analysisOptions,
		Text:         c.PostForm("text"),
		AnalysisType: c.DefaultPostForm("analysis_type", string(domain.TextAnalysisSentiment)),
	}

	res, err := h.AnalysisSvc.AnalyzeText(c.Request.Context(), data.Text, domain.TextAnalysisType(data.AnalysisType))
	if err != nil {
		h.renderPageError(c, "text.html", data, err, msgTextApology)
		return
	}
	data.Result = res.Result
	c.HTML(http.StatusOK, "text.html", data)
}

func (h *DetectionHandler) CountryPageHandler(c *gin.Context) {
	data := PageData{Page: countryPage, Query: strings.TrimSpace(c.Query("q"))}
	if data.Query == "" {
		c.HTML(http.StatusOK, "country.html", data)
		return
	}

	profiles, err := h.CountrySvc.Search(c.Request.Context(), data.Query)
	if err != nil {
		h.renderPageError(c, "country.html", data, err, domain.MsgCountryFailed)
		return
	}
	data.Countries = profiles
	c.HTML(http.StatusOK, "country.html", data)
}

// TextSearchHandler answers with {result} or {error} instead of the HttpError body.
func (h *DetectionHandler) TextSearchHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(h.MaxAllowedSize))

	var req dto.TextSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.TextSearchError{Error: domain.MsgTextSearchRequired})
		return
	}

	res, err := h.AnalysisSvc.TextSearch(c.Request.Context(), req.Query, req.Prompt)
	if err != nil {
		status, body := dto.MapTextSearchErr(err)
		h.Logger.Error("error in text search", "http.request.id", c.GetString("RequestID"), "status", status, "error.message", err.Error())
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, dto.AnalysisResponse{Result: res.Result})
}

func (h *DetectionHandler) AnalyzeImageHandler(c *gin.Context) {
	req := c.MustGet("payload").(dto.ImageAnalysisRequest)

	image, err := domain.DecodeImageBase64(req.ImageBase64, req.MimeType)
	if err != nil {
		h.writeErr(c, err)
		return
	}
	if int64(len(image.Data)) > h.MaxImageSize {
		httpErr := dto.HttpError{Message: "gambar terlalu besar", Code: domain.ErrCodeValidation, StatusCode: http.StatusRequestEntityTooLarge}
		c.JSON(httpErr.StatusCode, httpErr)
		return
	}

	res, err := h.AnalysisSvc.AnalyzeImage(c.Request.Context(), domain.ImageKind(req.Kind), image, req.Food)
	if err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AnalysisResponse{Result: res.Result})
}

func (h *DetectionHandler) AnalyzeTextHandler(c *gin.Context) {
	req := c.MustGet("payload").(dto.TextAnalysisRequest)

	res, err := h.AnalysisSvc.AnalyzeText(c.Request.Context(), req.Text, domain.TextAnalysisType(req.AnalysisType))
	if err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AnalysisResponse{Result: res.Result})
}

func (h *DetectionHandler) HistorySearchHandler(c *gin.Context) {
	req := c.MustGet("payload").(dto.HistorySearchRequest)

	res, err := h.AnalysisSvc.SearchHistory(c.Request.Context(), req.Query)
	if err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AnalysisResponse{Result: res.Result})
}

func (h *DetectionHandler) CountrySearchHandler(c *gin.Context) {
	profiles, err := h.CountrySvc.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *DetectionHandler) HealthHandler(c *gin.Context) {

	var memStat runtime.MemStats
	runtime.ReadMemStats(&memStat)

	var resp dto.HealthResponse
	resp.Status.StatusCode = http.StatusOK
	resp.Memory.AllocMB = memStat.Alloc / 1024 / 1024
	resp.Memory.TotalAllocMB = memStat.TotalAlloc / 1024 / 1024
	resp.Memory.SysMB = memStat.Sys / 1024 / 1024
	resp.Memory.NumGC = memStat.NumGC
	resp.Memory.NumGoroutine = runtime.NumGoroutine()

	c.JSON(http.StatusOK, resp)
}

func (h *DetectionHandler) readUploadedImage(c *gin.Context) (domain.Image, error) {
	// room for the multipart envelope and the other form fields
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxImageSize+(1<<20))

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return domain.Image{}, domain.NewDomainError(domain.ErrCodeValidation, "gambar terlalu besar", err)
		}
		return domain.Image{}, domain.ErrEmptyImage
	}
	defer file.Close()

	if header.Size > h.MaxImageSize {
		return domain.Image{}, domain.NewDomainError(domain.ErrCodeValidation, "gambar terlalu besar", nil)
	}

	data, err := io.ReadAll(io.LimitReader(file, h.MaxImageSize))
	if err != nil {
		return domain.Image{}, domain.NewDomainError(domain.ErrCodeValidation, "gagal membaca gambar", err)
	}
	return domain.NewImage(data, header.Header.Get("Content-Type"))
}

func (h *DetectionHandler) renderPageError(c *gin.Context, name string, data PageData, err error, fallback string) {
	httpErr := dto.MapErr(err)
	data.Error = fallback
	var de *domain.DomainError
	if errors.As(err, &de) {
		data.Error = de.Message
	}
	h.Logger.Warn("page request failed",
		"http.request.id", c.GetString("RequestID"),
		"url.path", c.Request.URL.Path,
		"status", httpErr.StatusCode,
		"error.message", err.Error())
	c.HTML(httpErr.StatusCode, name, data)
}

func (h *DetectionHandler) writeErr(c *gin.Context, err error) {
	httpErr := dto.MapErr(err)
	h.Logger.Warn("api request failed",
		"http.request.id", c.GetString("RequestID"),
		"url.path", c.Request.URL.Path,
		"status", httpErr.StatusCode,
		"error.message", err.Error())
	c.JSON(httpErr.StatusCode, httpErr)
}
