package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/sujalpowar2903-sys/studenthub123/core"
	"github.com/sujalpowar2903-sys/studenthub123/core/session"
)

var orderingParam = "ordering"

type Ordering struct {
	Orderings []core.DBOrdering
}

func (ord *Ordering) Bind(ctx echo.Context) {
	ord.Orderings = core.ParseOrdering(ctx.QueryParam(orderingParam))
}

type LoginResponse struct {
	Token    string       `json:"token"`
	Role     session.Role `json:"role"`
	Redirect string       `json:"redirect"`
}

type RedirectResponse struct {
	Redirect string `json:"redirect"`
}

type TagRequest struct {
	Tag string `json:"tag"`
}
