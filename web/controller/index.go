package controller

import (
	"net/http"
	"strconv"
	"text/template"

	"github.com/discorre/cyberbank-panel/backend"
	"github.com/discorre/cyberbank-panel/config"
	"github.com/discorre/cyberbank-panel/logger"
	"github.com/discorre/cyberbank-panel/util/common"
	"github.com/discorre/cyberbank-panel/web/entity"
	"github.com/discorre/cyberbank-panel/web/session"

	"github.com/gin-gonic/gin"
)

// IndexController handles the session screens: login, register and logout.
type IndexController struct {
	BaseController

	api *backend.Client
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup, api *backend.Client) *IndexController {
	a := &IndexController{api: api}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/login", a.loginPage)
	g.GET("/register", a.registerPage)
	g.GET("/logout", a.logout)

	g.POST("/login", a.login)
	g.POST("/register", a.register)
	g.POST("/logs/:count", a.getLogs)
}

func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path"))
		return
	}
	html(c, "login.html", "pages.login.title", nil)
}

func (a *IndexController) registerPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path"))
		return
	}
	html(c, "register.html", "pages.register.title", nil)
}

// login authenticates against the backend and stores the issued token.
// A failed attempt leaves any previously stored token untouched.
func (a *IndexController) login(c *gin.Context) {
	var form entity.LoginForm

	if err := c.ShouldBind(&form); err != nil {
		html(c, "login.html", "pages.login.title", gin.H{
			"error": I18nWeb(c, "pages.login.invalidCredentials"),
		})
		return
	}

	token, err := a.api.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		safeUser := template.HTMLEscapeString(form.Username)
		logger.Warningf("failed login for \"%s\", IP: \"%s\": %v", safeUser, getRemoteIp(c), err)
		html(c, "login.html", "pages.login.title", gin.H{
			"error":    I18nWeb(c, "pages.login.invalidCredentials"),
			"username": form.Username,
		})
		return
	}

	if err := session.SetMaxAge(c, config.GetSessionMaxAge()*60); err != nil {
		logger.Warning("Unable to set session max age:", err)
	}
	if err := session.SetToken(c, token.AccessToken, form.Username); err != nil {
		logger.Warning("Unable to save session:", err)
		html(c, "login.html", "pages.login.title", gin.H{
			"error": I18nWeb(c, "pages.login.invalidCredentials"),
		})
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", form.Username, getRemoteIp(c))
	c.Redirect(http.StatusFound, c.GetString("base_path"))
}

// register creates a new account and stores the issued token. The backend's
// error detail is discarded; the screen shows one static message.
func (a *IndexController) register(c *gin.Context) {
	var form entity.RegisterForm

	if err := c.ShouldBind(&form); err != nil {
		html(c, "register.html", "pages.register.title", gin.H{
			"error": I18nWeb(c, "pages.register.failed"),
		})
		return
	}

	token, err := a.api.Register(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		logger.Warningf("failed registration for \"%s\", IP: \"%s\": %v",
			template.HTMLEscapeString(form.Username), getRemoteIp(c), err)
		html(c, "register.html", "pages.register.title", gin.H{
			"error":    I18nWeb(c, "pages.register.failed"),
			"username": form.Username,
		})
		return
	}

	if err := session.SetMaxAge(c, config.GetSessionMaxAge()*60); err != nil {
		logger.Warning("Unable to set session max age:", err)
	}
	if err := session.SetToken(c, token.AccessToken, form.Username); err != nil {
		logger.Warning("Unable to save session:", err)
		html(c, "register.html", "pages.register.title", gin.H{
			"error": I18nWeb(c, "pages.register.failed"),
		})
		return
	}

	logger.Infof("%s registered successfully, IP: %s", form.Username, getRemoteIp(c))
	c.Redirect(http.StatusFound, c.GetString("base_path"))
}

// getLogs returns recent log entries from the in-memory buffer, newest
// first. Only available to a logged-in session.
func (a *IndexController) getLogs(c *gin.Context) {
	if !session.IsLogin(c) {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	count, err := strconv.Atoi(c.Param("count"))
	if err != nil || count < 1 {
		jsonMsg(c, I18nWeb(c, "fail"), common.NewErrorf("invalid log count %q", c.Param("count")))
		return
	}

	level := c.PostForm("level")
	if level == "" {
		level = "INFO"
	}

	jsonObj(c, logger.GetLogs(count, level), nil)
}

// logout drops the stored token and returns to the login screen.
func (a *IndexController) logout(c *gin.Context) {
	if user := session.GetUsername(c); user != "" {
		logger.Infof("%s logged out successfully", user)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("Unable to clear session:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login")
}
