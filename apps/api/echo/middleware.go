package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/sujalpowar2903-sys/studenthub123/core"
	"github.com/sujalpowar2903-sys/studenthub123/core/session"
)

// sessionMiddleware checks the JWT then loads its Session into the context.
func sessionMiddleware(conf *core.Config, svc *session.Service) echo.MiddlewareFunc {
	jwtMw := middleware.JWTWithConfig(newJWTConfig(conf))
	loadSession := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			sess, err := svc.Get(ctx.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Cause(err) == session.ErrNotFound {
					return errSessionEnded
				}
				return errors.Wrap(err, "getting session")
			}
			ctx.Set(contextSessionKey, sess)
			return next(ctx)
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return jwtMw(loadSession(next))
	}
}
