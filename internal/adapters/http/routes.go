package router

import (
	"net/http"
	"time"

	"github.com/KianoushAmirpour/detection_server/internal/adapters/http/dto"
	"github.com/KianoushAmirpour/detection_server/internal/adapters/http/handler"
	"github.com/KianoushAmirpour/detection_server/internal/adapters/http/middleware"
	"github.com/KianoushAmirpour/detection_server/internal/adapters/http/web"
	"github.com/KianoushAmirpour/detection_server/internal/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	DetectionHandler *handler.DetectionHandler
}

func SetupRoutes(config RouterConfig) (*gin.Engine, error) {

	h := config.DetectionHandler

	g := gin.New()

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	g.SetHTMLTemplate(tmpl)
	g.StaticFS("/static", http.FS(web.Static()))

	g.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"https://*", "http://*"},
			AllowWildcard:    true,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Accept", "Content-Type", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.AddRequestID(),
		middleware.PanicRecoveryMiddleware(h.Logger),
		middleware.LoggingRequestMiddleware(h.Logger),
	)

	g.Handle("GET", "/health", h.HealthHandler)

	limited := g.Group("")
	limited.Use(middleware.RateLimiterMiddelware(h.RateLimiter, h.Logger))

	// pages
	limited.Handle("GET", "/", h.HomePageHandler)
	for _, kind := range []domain.ImageKind{domain.ImageKindAnimal, domain.ImageKindPlant, domain.ImageKindMedicinal, domain.ImageKindHistorical} {
		path := "/deteksi-" + string(kind)
		limited.Handle("GET", path, h.ImagePageHandler(kind))
		limited.Handle("POST", path, h.ImageDetectionHandler(kind))
	}
	limited.Handle("POST", "/deteksi-sejarah/cari", h.HistorySearchPageHandler)
	limited.Handle("GET", "/deteksi-teks", h.TextPageHandler)
	limited.Handle("POST", "/deteksi-teks", h.TextAnalysisPageHandler)
	limited.Handle("GET", "/deteksi-negara", h.CountryPageHandler)

	// json api
	api := limited.Group("/api")
	{
		api.Handle("POST", "/text-search", h.TextSearchHandler)
		api.Handle("GET", "/countries", h.CountrySearchHandler)

		api.Handle("POST", "/analyze/image", middleware.CheckContentType(), middleware.CheckContentBody[dto.ImageAnalysisRequest](h.MaxAllowedSize), h.AnalyzeImageHandler)
		api.Handle("POST", "/analyze/text", middleware.CheckContentType(), middleware.CheckContentBody[dto.TextAnalysisRequest](h.MaxAllowedSize), h.AnalyzeTextHandler)
		api.Handle("POST", "/history/search", middleware.CheckContentType(), middleware.CheckContentBody[dto.HistorySearchRequest](h.MaxAllowedSize), h.HistorySearchHandler)
	}

	return g, nil

}
