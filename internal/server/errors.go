package server

import (
	"errors"
	"net/http"
	"strings"

	catalogdomain "github.com/colorhaus/colorhaus/internal/catalog/domain"
	colordomain "github.com/colorhaus/colorhaus/internal/color/domain"
	dosagedomain "github.com/colorhaus/colorhaus/internal/dosage/domain"
	profiledomain "github.com/colorhaus/colorhaus/internal/profile/domain"
	quotedomain "github.com/colorhaus/colorhaus/internal/quote/domain"
	reportdomain "github.com/colorhaus/colorhaus/internal/report/domain"
	samplerequestdomain "github.com/colorhaus/colorhaus/internal/samplerequest/domain"
	signaturedomain "github.com/colorhaus/colorhaus/internal/signature/domain"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   "request",
				Code:    "invalid_request",
				Message: "invalid request",
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := err.Error()
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: "invalid value",
				},
			},
		}
	}

	switch {
	case isUnauthorizedError(err):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, ErrForbidden),
		errors.Is(err, quotedomain.ErrForbidden):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: "forbidden",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, colordomain.ErrInvalidName),
		errors.Is(err, colordomain.ErrInvalidHex),
		errors.Is(err, colordomain.ErrInvalidID),
		errors.Is(err, catalogdomain.ErrInvalidCode),
		errors.Is(err, catalogdomain.ErrInvalidName),
		errors.Is(err, catalogdomain.ErrInvalidID),
		errors.Is(err, catalogdomain.ErrInvalidPrice),
		errors.Is(err, quotedomain.ErrInvalidID),
		errors.Is(err, quotedomain.ErrInvalidCustomer),
		errors.Is(err, quotedomain.ErrInvalidQuantity),
		errors.Is(err, quotedomain.ErrInvalidStatus),
		errors.Is(err, quotedomain.ErrInvalidDiscount),
		errors.Is(err, dosagedomain.ErrInvalidPercent),
		errors.Is(err, dosagedomain.ErrInvalidPigmentName),
		errors.Is(err, dosagedomain.ErrTooManyPigments),
		errors.Is(err, dosagedomain.ErrInvalidDosageTotal),
		errors.Is(err, dosagedomain.ErrInvalidID),
		errors.Is(err, reportdomain.ErrInvalidPeriod),
		errors.Is(err, samplerequestdomain.ErrEmptyBatch),
		errors.Is(err, samplerequestdomain.ErrBatchTooLarge),
		errors.Is(err, samplerequestdomain.ErrInvalidID),
		errors.Is(err, signaturedomain.ErrInvalidProvider),
		errors.Is(err, signaturedomain.ErrInvalidAPIKey),
		errors.Is(err, signaturedomain.ErrInvalidEndpoint),
		errors.Is(err, signaturedomain.ErrEmptyDocument),
		errors.Is(err, profiledomain.ErrInvalidEmail),
		errors.Is(err, profiledomain.ErrInvalidPassword):
		return true
	default:
		return false
	}
}

func isUnauthorizedError(err error) bool {
	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, profiledomain.ErrInvalidCredentials),
		errors.Is(err, profiledomain.ErrInvalidSession),
		errors.Is(err, quotedomain.ErrUnauthenticated),
		errors.Is(err, samplerequestdomain.ErrUnauthenticated):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, colordomain.ErrNotFound),
		errors.Is(err, catalogdomain.ErrNotFound),
		errors.Is(err, catalogdomain.ErrCategoryNotFound),
		errors.Is(err, catalogdomain.ErrFinishNotFound),
		errors.Is(err, catalogdomain.ErrTextureNotFound),
		errors.Is(err, catalogdomain.ErrColorNotFound),
		errors.Is(err, quotedomain.ErrNotFound),
		errors.Is(err, quotedomain.ErrItemNotFound),
		errors.Is(err, quotedomain.ErrVariantNotFound),
		errors.Is(err, dosagedomain.ErrQuoteNotFound),
		errors.Is(err, dosagedomain.ErrVariantNotFound),
		errors.Is(err, dosagedomain.ErrNotFound),
		errors.Is(err, samplerequestdomain.ErrVariantNotFound),
		errors.Is(err, profiledomain.ErrProfileNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, ErrConflict),
		errors.Is(err, colordomain.ErrColorReferenced),
		errors.Is(err, catalogdomain.ErrDuplicateCode),
		errors.Is(err, quotedomain.ErrInvalidTransition),
		errors.Is(err, quotedomain.ErrQuoteNotEditable),
		errors.Is(err, signaturedomain.ErrNotConfigured),
		errors.Is(err, profiledomain.ErrProfileExists):
		return true
	default:
		return false
	}
}

func validationErrorField(code string) string {
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}

func classifyErrorForLog(err error) (string, string) {
	_, payload := mapError(err)
	code := payload.Type
	if len(payload.Errors) > 0 {
		code = payload.Errors[0].Code
	}
	return payload.Type, code
}
