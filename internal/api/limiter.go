package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/fps2go/internal/controller"
	"github.com/markusressel/fps2go/internal/notify"
	"github.com/markusressel/fps2go/internal/ui"
)

type LimiterStatus struct {
	controller.Status
	Message string `json:"message"`
}

type ToggleResult struct {
	Enabled bool              `json:"enabled"`
	Status  controller.Status `json:"status"`
	Message string            `json:"message"`
}

func registerLimiterEndpoints(rest *echo.Echo, deps Dependencies, auth echo.MiddlewareFunc) {
	group := rest.Group("/limiter")

	group.GET("/", func(c echo.Context) error {
		return getLimiterStatus(c, deps)
	})
	group.POST("/toggle/", func(c echo.Context) error {
		return toggleLimiter(c, deps)
	}, auth)
}

func getLimiterStatus(c echo.Context, deps Dependencies) error {
	status := deps.Controller.Status()
	params := notify.Params{
		"value":   "-",
		"load":    status.CurrentLoad,
		"enabled": status.Enabled,
	}
	if status.CurrentValue != nil {
		params["value"] = *status.CurrentValue
	}

	return c.JSONPretty(http.StatusOK, &LimiterStatus{
		Status:  status,
		Message: deps.Catalog.Render(c.QueryParam(queryParamLang), notify.KeyLimiterStatus, params),
	}, indentationChar)
}

func toggleLimiter(c echo.Context, deps Dependencies) error {
	enabled := deps.Controller.Toggle()

	if deps.Persistence != nil {
		if err := deps.Persistence.SaveEnabled(enabled); err != nil {
			ui.Warning("Unable to persist enabled state: %v", err)
		}
	}

	key := notify.KeyLimiterEnabled
	if !enabled {
		key = notify.KeyLimiterDisabled
	}
	params := notify.Params{
		"value": deps.Controller.GetConfig().MaxValue,
	}

	return c.JSONPretty(http.StatusOK, &ToggleResult{
		Enabled: enabled,
		Status:  deps.Controller.Status(),
		Message: deps.Catalog.Render(c.QueryParam(queryParamLang), key, params),
	}, indentationChar)
}
