package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/KianoushAmirpour/detection_server/internal/adapters/http/dto"
	"github.com/KianoushAmirpour/detection_server/internal/adapters/http/utils"
	"github.com/KianoushAmirpour/detection_server/internal/domain"
	"github.com/KianoushAmirpour/detection_server/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func AddRequestID() gin.HandlerFunc {

	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()

		}
		c.Writer.Header().Set("X-Request-Id", requestID)
		c.Set("RequestID", requestID)

		ctx := observability.WithRequestID(c.Request.Context(), requestID)
		ctx = observability.WithRequestStartTime(ctx, time.Now())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func CheckContentType() gin.HandlerFunc {

	return func(c *gin.Context) {
		contentType := c.GetHeader("Content-Type")

		parts := strings.Split(contentType, ";")
		if len(parts) == 0 || strings.TrimSpace(strings.ToLower(parts[0])) != "application/json" {
			httpErr := dto.HttpError{Message: "invalid content type, expected application/json", Code: domain.ErrCodeValidation, StatusCode: http.StatusUnsupportedMediaType}
			c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			return
		}
		c.Next()
	}
}

// DecodeJSONBody decodes exactly one json value into dst. The returned error
// is ready to be sent to the client.
func DecodeJSONBody(c *gin.Context, maxsize int, dst any) *dto.HttpError {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(maxsize))

	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(dst)

	if err != nil {
		var syntanxErr *json.SyntaxError
		var unmarshalTypeErr *json.UnmarshalTypeError
		var maxBytesErr *http.MaxBytesError

		switch {

		case errors.Is(err, io.EOF):
			return &dto.HttpError{Message: "body must not be empty", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}

		case errors.Is(err, io.ErrUnexpectedEOF):
			return &dto.HttpError{Message: "body contains badly-formed json", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}

		case errors.As(err, &maxBytesErr):
			return &dto.HttpError{Message: fmt.Sprintf("body must not be larger than %d bytes", maxsize), Code: domain.ErrCodeValidation, StatusCode: http.StatusRequestEntityTooLarge}

		case errors.As(err, &syntanxErr):
			return &dto.HttpError{Message: fmt.Sprintf("body contains badly-formed json at character %d", syntanxErr.Offset), Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}

		case errors.As(err, &unmarshalTypeErr):
			return &dto.HttpError{Message: fmt.Sprintf("body contains incorrect json type for %q at %d", unmarshalTypeErr.Field, unmarshalTypeErr.Offset), Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}

		case strings.HasPrefix(err.Error(), "json: unknown field"):
			fieldname := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return &dto.HttpError{Message: fmt.Sprintf("body contains unknow key %s", fieldname), Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}

		default:
			return &dto.HttpError{Message: fmt.Sprintf("error happend: %s", err.Error()), Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}

		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &dto.HttpError{Message: "body must contain only one json value", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
	}
	return nil
}

func CheckContentBody[T any](maxsize int) gin.HandlerFunc {
	return func(c *gin.Context) {

		var u T

		if httpErr := DecodeJSONBody(c, maxsize, &u); httpErr != nil {
			c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			return
		}

		err := utils.Validator().Struct(u)
		if err != nil {
			httpErr := dto.HttpError{Message: err.Error(), Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
			c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			return
		}
		c.Set("payload", u)
		c.Next()

	}
}

func RateLimiterMiddelware(limiter domain.RateLimiter, logger domain.LoggingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		log := logger.With("service.name", "rate_limiter", "http.request.id", c.GetString("RequestID"))
		if ip == "" {
			log.Warn("extract_user_ip", "reason", "invalid_user_ip")
			httpErr := dto.HttpError{Message: "invalid ip", Code: domain.ErrCodeValidation, StatusCode: http.StatusBadRequest}
			c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			return
		}

		allowed, err := limiter.AllowRequest(c.Request.Context(), ip)
		if err != nil {
			// fail open while the limiter backend is unavailable
			log.Error("rate_limit_check", "reason", "limiter_unavailable", "error.message", err.Error())
			c.Next()
			return
		}
		if !allowed {
			log.Warn("rate_limit_check", "reason", "rate_limit_exceeded", "user_ip", ip)
			httpErr := dto.HttpError{Message: domain.MsgRequestLimited, Code: domain.ErrCodeRateLimited, StatusCode: http.StatusTooManyRequests}
			c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			return
		}
		c.Next()
	}
}

func LoggingRequestMiddleware(logger domain.LoggingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		start, ok := observability.GetRequestStartTime(c.Request.Context())
		if !ok {
			start = time.Now()
		}

		logger.Info("http_request_end",
			"http.request.id", c.GetString("RequestID"),
			"http.request.method", c.Request.Method,
			"user_agent.original", c.Request.UserAgent(),
			"url.path", c.Request.URL.Path,
			"http.response.status_code", c.Writer.Status(),
			"event.duration", time.Since(start).Nanoseconds())
	}
}

func PanicRecoveryMiddleware(logger domain.LoggingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {

		defer func() {
			if r := recover(); r != nil {
				logger.Error("internal server error",
					"http.request.id", c.GetString("RequestID"),
					"http.request.method", c.Request.Method,
					"url.path", c.FullPath(),
					"reason", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)

				httpErr := dto.HttpError{Message: "internal server error", Code: domain.ErrCodeInternal, StatusCode: http.StatusInternalServerError}
				c.AbortWithStatusJSON(httpErr.StatusCode, httpErr)
			}
		}()

		c.Next()
	}
}
