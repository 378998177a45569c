package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sujalpowar2903-sys/studenthub123/core/activity"
)

type dashboardApi struct {
	svc *activity.Service
}

func registerDashboardAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *activity.Service) {
	api := dashboardApi{svc: svc}

	g.GET("/dashboard", api.dashboard, auth)
	g.GET("/activities", api.queryActivities, auth)
}

// Handlers

func (api *dashboardApi) dashboard(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Dashboard())
}

func (api *dashboardApi) queryActivities(ctx echo.Context) error {
	filter := new(activity.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return errInvalidPayload
	}
	ordering := new(Ordering)
	ordering.Bind(ctx)

	entries, err := api.svc.Query(*filter, ordering.Orderings)
	if err != nil {
		return errors.Wrap(err, "querying activities")
	}
	return ctx.JSON(http.StatusOK, entries)
}
