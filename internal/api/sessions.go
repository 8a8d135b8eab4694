package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/fps2go/internal/sessions"
	"github.com/qdm12/reprint"
)

type JoinRequest struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Language   string `json:"language"`
	Privileged bool   `json:"privileged"`
}

func registerSessionEndpoints(rest *echo.Echo, deps Dependencies, auth echo.MiddlewareFunc) {
	group := rest.Group("/session")

	group.GET("/", func(c echo.Context) error {
		return getSessions(c, deps)
	}, auth)
	group.GET("/:"+urlParamId+"/", func(c echo.Context) error {
		return getSession(c, deps)
	}, auth)
	group.GET("/:"+urlParamId+"/inbox/", func(c echo.Context) error {
		return getInbox(c, deps)
	}, auth)
	group.POST("/", func(c echo.Context) error {
		return joinSession(c, deps)
	}, auth)
	group.DELETE("/:"+urlParamId+"/", func(c echo.Context) error {
		return leaveSession(c, deps)
	}, auth)
}

func getSessions(c echo.Context, deps Dependencies) error {
	data := reprint.This(deps.Tracker.List())
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getSession(c echo.Context, deps Dependencies) error {
	id := c.Param(urlParamId)
	data, exists := deps.Tracker.Get(id)
	if !exists {
		return returnNotFound(c, id)
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getInbox(c echo.Context, deps Dependencies) error {
	id := c.Param(urlParamId)
	data, err := deps.Tracker.Inbox(id)
	if errors.Is(err, sessions.ErrSessionNotFound) {
		return returnNotFound(c, id)
	} else if err != nil {
		return returnError(c, err)
	}
	if data == nil {
		data = []sessions.Message{}
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func joinSession(c echo.Context, deps Dependencies) error {
	request := JoinRequest{}
	if err := c.Bind(&request); err != nil {
		return returnBadRequest(c, err)
	}

	session := sessions.Session{
		Id:         request.Id,
		Name:       request.Name,
		Language:   request.Language,
		Privileged: request.Privileged,
	}
	created, err := deps.Tracker.Join(session)
	if err != nil {
		return returnBadRequest(c, err)
	}
	deps.Controller.OnLoadChanged()

	data, _ := deps.Tracker.Get(session.Id)
	if created {
		return c.JSONPretty(http.StatusCreated, data, indentationChar)
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func leaveSession(c echo.Context, deps Dependencies) error {
	id := c.Param(urlParamId)
	err := deps.Tracker.Leave(id)
	if errors.Is(err, sessions.ErrSessionNotFound) {
		return returnNotFound(c, id)
	} else if err != nil {
		return returnError(c, err)
	}
	deps.Controller.OnLoadChanged()
	return c.NoContent(http.StatusNoContent)
}
