package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mdshopp/storefront/internal/service"
)

// fail logs err under event and turns it into the matching HTTP error. Domain
// failures keep their reason, anything else is reported as internalMsg.
func fail(l *slog.Logger, event string, err error, internalMsg string) error {
	var status int
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	default:
		l.Error(event, "status", http.StatusInternalServerError, "reason", internalMsg, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, internalMsg)
	}

	reason := service.Reason(err)
	l.Warn(event, "status", status, "reason", reason, "error", err)
	return echo.NewHTTPError(status, reason)
}

func badRequest(l *slog.Logger, event, reason string, err error) error {
	l.Warn(event, "status", http.StatusBadRequest, "reason", reason, "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, reason)
}
