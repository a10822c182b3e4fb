package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dailymate/dailymate-api/internal/api/handler"
	"github.com/dailymate/dailymate-api/internal/core/domain"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgInternal           = "Internal server error"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors without leaking details outside development.
//   - Renders the shared {success, message, error} envelope.
func NewHTTPErrorHandler(log zerolog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, detail := resolveError(err, log, c, development)
		resp := handler.Response{Success: false, Message: msg, Error: detail}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, development bool) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, rate limiting, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), ""
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message, ""
	}

	switch {
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAlreadyVerified),
		errors.Is(err, domain.ErrInvalidOrExpiredCode),
		errors.Is(err, domain.ErrPasswordMismatch),
		errors.Is(err, domain.ErrWrongPassword):
		return http.StatusBadRequest, err.Error(), ""

	// Inactive accounts are indistinguishable from bad credentials.
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrAccountInactive):
		return http.StatusUnauthorized, msgInvalidCredentials, ""
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "Unauthorized", ""

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Access forbidden", ""

	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrKidNotFound),
		errors.Is(err, domain.ErrParentNotFound),
		errors.Is(err, domain.ErrTeacherNotFound),
		errors.Is(err, domain.ErrCourseNotFound),
		errors.Is(err, domain.ErrLessonNotFound),
		errors.Is(err, domain.ErrAssessmentNotFound):
		return http.StatusNotFound, err.Error(), ""
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	detail := ""
	if development {
		detail = err.Error()
	}
	if errors.Is(err, domain.ErrMailDelivery) {
		return http.StatusInternalServerError, "Failed to send email, please try again later", detail
	}
	return http.StatusInternalServerError, msgInternal, detail
}
