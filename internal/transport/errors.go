package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/auth"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/service"
)

// msgCredentialsRejected is shared by every signup/signin failure so the
// client cannot tell which check failed.
const msgCredentialsRejected = "credentials rejected"

// ErrorHandler maps service errors to HTTP responses and hands everything
// else to echo's default handler.
func (s *HTTPServer) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	switch {
	case errors.Is(err, service.ErrCredentialsTaken),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrInvalidCredentials):
		s.logger.Infow("credentials rejected", "path", c.Path(), "reason", err.Error())
		err = echo.NewHTTPError(http.StatusForbidden, msgCredentialsRejected)
	case errors.Is(err, auth.ErrPasswordTooLong):
		err = echo.NewHTTPError(http.StatusBadRequest, auth.ErrPasswordTooLong.Error())
	case errors.Is(err, service.ErrAccessDenied):
		err = echo.NewHTTPError(http.StatusForbidden, service.ErrAccessDenied.Error())
	case errors.Is(err, service.ErrBookmarkNotFound):
		err = echo.NewHTTPError(http.StatusNotFound, service.ErrBookmarkNotFound.Error())
	default:
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			s.logger.Errorw("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}
	}

	s.echo.DefaultHTTPErrorHandler(err, c)
}
