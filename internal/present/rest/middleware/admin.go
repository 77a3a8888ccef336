package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/breakroom-app/breakroom/internal/config"
	"github.com/breakroom-app/breakroom/internal/present/rest/presenter"
)

var tracer = otel.Tracer("middleware")

type AdminMiddleware struct {
	config config.Config
}

func NewAdminMiddleware(config config.Config) *AdminMiddleware {
	return &AdminMiddleware{
		config: config,
	}
}

// RequireToken gates the moderation surface on the X-Admin-Token header.
// With no token configured the surface is open (local development).
func (m *AdminMiddleware) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Middleware.Admin.RequireToken")
		defer span.End()

		want := m.config.Admin.Token
		if want != "" {
			got := c.Request().Header.Get("X-Admin-Token")
			if subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
				span.RecordError(echo.ErrUnauthorized)
				return presenter.Unauthorized(c, "unauthorized")
			}
		}

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
