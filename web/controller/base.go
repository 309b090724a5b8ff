// Package controller provides the HTTP request handlers for the cyberbank
// incident panel: the session screens and the incident screens. There is no
// route guard on the incident screens; the backend enforces authorization
// on every request the panel forwards.
package controller

import (
	"github.com/discorre/cyberbank-panel/logger"
	"github.com/discorre/cyberbank-panel/web/locale"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers.
type BaseController struct{}

// I18nWeb retrieves an internationalized message based on the current locale.
func I18nWeb(c *gin.Context, name string, params ...string) string {
	anyfunc, funcExists := c.Get("I18n")
	if !funcExists {
		logger.Warning("I18n function not exists in gin context!")
		return ""
	}
	i18nFunc, _ := anyfunc.(func(key string, keyParams ...string) string)
	if i18nFunc == nil {
		return locale.I18n(name, params...)
	}
	return i18nFunc(name, params...)
}
