package dto

import (
	"errors"
	"net/http"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
)

type HttpError struct {
	Message    string `json:"message"`
	Code       string `json:"code"`
	StatusCode int    `json:"status_code"`
}

func (e *HttpError) Error() string {
	return e.Message
}

func MapErr(err error) HttpError {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return MapDomainErrToHttpErr(de)
	}
	return HttpError{
		Message:    "internal server error",
		Code:       domain.ErrCodeInternal,
		StatusCode: http.StatusInternalServerError,
	}
}

func MapDomainErrToHttpErr(err *domain.DomainError) HttpError {
	var status int
	switch err.Code {
	case domain.ErrCodeValidation:
		status = http.StatusBadRequest
	case domain.ErrCodeNotFound:
		status = http.StatusNotFound
	case domain.ErrCodeRateLimited:
		status = http.StatusTooManyRequests
	case domain.ErrCodeServiceBusy:
		status = http.StatusServiceUnavailable
	case domain.ErrCodeExternal:
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}
	return HttpError{
		Message:    err.Message,
		Code:       err.Code,
		StatusCode: status,
	}
}

// TextSearchError is the {error} body of the text search endpoint.
type TextSearchError struct {
	Error string `json:"error"`
}

// MapTextSearchErr keeps the text search contract: 400 for missing fields,
// 503 while the model is overloaded and 500 for anything else.
func MapTextSearchErr(err error) (int, TextSearchError) {
	var de *domain.DomainError
	if errors.As(err, &de) {
		switch de.Code {
		case domain.ErrCodeValidation:
			return http.StatusBadRequest, TextSearchError{Error: domain.MsgTextSearchRequired}
		case domain.ErrCodeServiceBusy:
			return http.StatusServiceUnavailable, TextSearchError{Error: domain.MsgServiceBusy}
		}
	}
	return http.StatusInternalServerError, TextSearchError{Error: domain.MsgTextSearchFailed}
}
