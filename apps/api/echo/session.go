package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sujalpowar2903-sys/studenthub123/core"
	"github.com/sujalpowar2903-sys/studenthub123/core/session"
)

type sessionApi struct {
	svc  *session.Service
	conf *core.Config
}

func registerSessionAPI(
	g *echo.Group,
	auth echo.MiddlewareFunc,
	svc *session.Service,
	conf *core.Config,
) {
	api := sessionApi{
		svc:  svc,
		conf: conf,
	}

	sg := g.Group("/session")

	// un-authed endpoints
	sg.GET("/roles", api.roles)
	sg.POST("/login", api.login)

	// authed endpoints
	sg.GET("", api.retrieve, auth)
	sg.POST("/logout", api.logout, auth)
}

// Handlers

func (api *sessionApi) roles(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, session.Roles())
}

func (api *sessionApi) login(ctx echo.Context) error {
	var data session.LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errInvalidPayload
	}

	sess, err := api.svc.Login(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "logging in")
	}
	token, err := GenerateToken(api.conf, GetSessionClaims(api.conf, sess))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		Role:     sess.Role,
		Redirect: sess.Role.LandingPath(),
	})
}

func (api *sessionApi) retrieve(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sess)
}

func (api *sessionApi) logout(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	if err = api.svc.Logout(ctx.Request().Context(), sess.ID); err != nil {
		return errors.Wrap(err, "logging out")
	}
	return ctx.JSON(http.StatusOK, RedirectResponse{Redirect: core.RouteLogin})
}
