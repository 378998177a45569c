package echoapi

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sujalpowar2903-sys/studenthub123/core"
	"github.com/sujalpowar2903-sys/studenthub123/core/achievement"
)

const filesField = "files"

type achievementApi struct {
	svc *achievement.Service
}

func registerAchievementAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *achievement.Service) {
	api := achievementApi{svc: svc}

	ag := g.Group("/achievements/drafts", auth)
	ag.POST("", api.open)

	// detail endpoints
	dg := ag.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PATCH("", api.update)
	dg.DELETE("", api.discard)
	dg.POST("/tags", api.addTag)
	dg.DELETE("/tags/:tag", api.removeTag)
	dg.POST("/attachments", api.attach)
	dg.DELETE("/attachments/:index", api.detach)
	dg.POST("/submit", api.submit)
}

// Handlers

func (api *achievementApi) open(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.svc.Open(sess.ID))
}

func (api *achievementApi) retrieve(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	d, err := api.svc.Get(sess.ID, ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting draft")
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *achievementApi) update(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	var data achievement.DraftUpdate
	if err = ctx.Bind(&data); err != nil {
		return errInvalidPayload
	}

	d, err := api.svc.Update(sess.ID, ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating draft")
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *achievementApi) discard(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	if err = api.svc.Discard(sess.ID, ctx.Param("id")); err != nil {
		return errors.Wrap(err, "discarding draft")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *achievementApi) addTag(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	var data TagRequest
	if err = ctx.Bind(&data); err != nil {
		return errInvalidPayload
	}

	// blank and duplicate tags are ignored, not rejected
	d, _, err := api.svc.AddTag(sess.ID, ctx.Param("id"), data.Tag)
	if err != nil {
		return errors.Wrap(err, "adding tag")
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *achievementApi) removeTag(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	// echo matches on the raw path, so an escaped "/" in a tag arrives as %2F
	tag, err := url.PathUnescape(ctx.Param("tag"))
	if err != nil {
		return errHttpNotFound
	}
	d, err := api.svc.RemoveTag(sess.ID, ctx.Param("id"), tag)
	if err != nil {
		return errors.Wrap(err, "removing tag")
	}
	return ctx.JSON(http.StatusOK, d)
}

// attach only records the file headers; the uploaded bytes are never read.
func (api *achievementApi) attach(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	form, err := ctx.MultipartForm()
	if err != nil {
		return errInvalidPayload
	}

	files := form.File[filesField]
	refs := make([]achievement.Attachment, 0, len(files))
	for _, fh := range files {
		refs = append(refs, achievement.Attachment{
			Name:        fh.Filename,
			Size:        fh.Size,
			ContentType: fh.Header.Get(echo.HeaderContentType),
		})
	}

	d, err := api.svc.Attach(sess.ID, ctx.Param("id"), refs...)
	if err != nil {
		return errors.Wrap(err, "attaching files")
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *achievementApi) detach(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return errHttpNotFound
	}

	d, err := api.svc.Detach(sess.ID, ctx.Param("id"), index)
	if err != nil {
		return errors.Wrap(err, "detaching file")
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *achievementApi) submit(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}

	res, err := api.svc.Submit(sess.ID, ctx.Param("id"))
	if err != nil {
		if vErr, ok := errors.Cause(err).(*core.ValidationError); ok && vErr.Err == achievement.ErrMissingInformation {
			return ctx.JSON(http.StatusBadRequest, res)
		}
		return errors.Wrap(err, "submitting draft")
	}
	return ctx.JSON(http.StatusOK, res)
}
