package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/newsdeskhq/newsdesk-backend/internal/domain"
)

// AppError pairs an HTTP status with a stable machine-readable code so the
// transport layer can surface domain failures without repeating the mapping
// at every call site.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(statusCode int, code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, "NOT_FOUND", message)
}

func BadRequest(code, message string) *AppError {
	return New(http.StatusBadRequest, code, message)
}

func Unauthorized(code, message string) *AppError {
	return New(http.StatusUnauthorized, code, message)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, "FORBIDDEN", message)
}

func Conflict(code, message string) *AppError {
	return New(http.StatusConflict, code, message)
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// FromError translates an error into its HTTP form. AppError values pass
// through unchanged, domain sentinels get their canonical status and code,
// and anything unrecognized becomes an opaque 500.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrArticleNotFound):
		return NotFound("article not found")
	case errors.Is(err, domain.ErrCategoryNotFound):
		return NotFound("category not found")
	case errors.Is(err, domain.ErrTagNotFound):
		return NotFound("tag not found")
	case errors.Is(err, domain.ErrAuthorNotFound):
		return NotFound("author not found")
	case errors.Is(err, domain.ErrCommentNotFound):
		return NotFound("comment not found")
	case errors.Is(err, domain.ErrSubscriptionNotFound):
		return NotFound("subscription not found")
	case errors.Is(err, domain.ErrContactMessageNotFound):
		return NotFound("contact message not found")
	case errors.Is(err, domain.ErrForbidden):
		return Forbidden("access denied")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return Unauthorized("INVALID_CREDENTIALS", "invalid email or password")
	case errors.Is(err, domain.ErrAuthorAlreadyExists):
		return Conflict("EMAIL_TAKEN", "email already registered")
	case errors.Is(err, domain.ErrAlreadySubscribed):
		return Conflict("ALREADY_SUBSCRIBED", "email is already subscribed")
	case errors.Is(err, domain.ErrSlugTaken):
		return Conflict("SLUG_TAKEN", "slug already in use")
	default:
		return Internal(err)
	}
}
