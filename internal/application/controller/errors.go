package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"golf-api/internal/domain/distance"
	"golf-api/internal/domain/model"
	"golf-api/internal/domain/usecase/auth"
	"golf-api/internal/domain/usecase/club"
	"golf-api/pkg/log"
)

// statusOf maps use case errors to the HTTP status returned to the client
func statusOf(err error) int {
	var parseErr *distance.ParseError
	var validationErr *distance.ValidationError
	var notFoundErr *distance.NotFoundError

	switch {
	case errors.As(err, &parseErr), errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr), errors.Is(err, club.ErrClubNotFound), errors.Is(err, club.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrUsernameTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorJSON writes err with its mapped status. Internal errors are logged and hidden from the client.
func errorJSON(c echo.Context, err error) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		return c.JSON(status, model.ErrorResponse{Error: http.StatusText(status)})
	}
	return c.JSON(status, model.ErrorResponse{Error: err.Error()})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: message})
}

// HTTPErrorHandler replaces echo's default handler so routing and encoding failures
// answer with the same {"error": ...} body as the controllers.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if text, ok := httpErr.Message.(string); ok {
			message = text
		} else {
			message = http.StatusText(status)
		}
	}
	if status >= http.StatusInternalServerError {
		log.Error("unhandled request error", zap.String("uri", c.Request().RequestURI), zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, model.ErrorResponse{Error: message})
	}
	if err != nil {
		log.Error("failed to write error response", zap.Error(err))
	}
}
