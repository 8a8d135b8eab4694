package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/markusressel/fps2go/internal/configuration"
	"github.com/markusressel/fps2go/internal/controller"
	"github.com/markusressel/fps2go/internal/notify"
	"github.com/markusressel/fps2go/internal/persistence"
	"github.com/markusressel/fps2go/internal/sessions"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	urlParamId      = "id"
	queryParamLang  = "lang"
	indentationChar = "  "

	HeaderApiKey = "X-API-Key"
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}

	// Dependencies are the objects served by the rest service
	Dependencies struct {
		Config     configuration.ApiConfig
		Controller controller.LimitController
		Tracker    *sessions.Tracker
		Catalog    *notify.Catalog
		// Persistence stores the enabled state on toggle, optional
		Persistence persistence.Persistence
		// Registerer enables request metrics, optional
		Registerer prometheus.Registerer
	}
)

func CreateRestService(deps Dependencies) *echo.Echo {
	echoRest := CreateWebserver()

	if deps.Registerer != nil {
		echoRest.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace:  "fps2go",
			Subsystem:  "api",
			Registerer: deps.Registerer,
		}))
	}

	echoRest.GET("/alive/", isAlive)

	auth := keyAuth(deps.Config.Tokens, deps.Catalog)
	registerLimiterEndpoints(echoRest, deps, auth)
	registerSessionEndpoints(echoRest, deps, auth)

	return echoRest
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// return a "not found" message
func returnNotFound(c echo.Context, id string) (err error) {
	return c.JSONPretty(http.StatusNotFound, &Result{
		Name:    "Not found",
		Message: "No item with id '" + id + "' found",
	}, indentationChar)
}

func returnBadRequest(c echo.Context, e error) (err error) {
	return c.JSONPretty(http.StatusBadRequest, &Result{
		Name:    "Bad Request",
		Message: e.Error(),
	}, indentationChar)
}

// return the error message of an error
func returnError(c echo.Context, e error) (err error) {
	return c.JSONPretty(http.StatusInternalServerError, &Result{
		Name:    "Unknown Error",
		Message: e.Error(),
	}, indentationChar)
}
