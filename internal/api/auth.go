package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/markusressel/fps2go/internal/notify"
)

// keyAuth only lets requests pass that carry one of the given tokens.
// Without any tokens every request is denied.
func keyAuth(tokens []string, catalog *notify.Catalog) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "header:" + HeaderApiKey,
		Validator: func(key string, c echo.Context) (bool, error) {
			for _, token := range tokens {
				if len(token) > 0 && subtle.ConstantTimeCompare([]byte(key), []byte(token)) == 1 {
					return true, nil
				}
			}
			return false, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return returnPermissionDenied(c, catalog)
		},
	})
}

func returnPermissionDenied(c echo.Context, catalog *notify.Catalog) error {
	return c.JSONPretty(http.StatusForbidden, &Result{
		Name:    "Forbidden",
		Message: catalog.Render(c.QueryParam(queryParamLang), notify.KeyPermissionDenied, nil),
	}, indentationChar)
}
