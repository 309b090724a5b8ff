package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/discorre/cyberbank-panel/backend"
	"github.com/discorre/cyberbank-panel/logger"
	"github.com/discorre/cyberbank-panel/util/common"
	"github.com/discorre/cyberbank-panel/web/entity"
	"github.com/discorre/cyberbank-panel/web/session"

	"github.com/gin-gonic/gin"
)

// IncidentController handles the incident screens: list, detail and the
// create/edit form. Every screen fetches from the backend on request;
// nothing is cached between navigations.
type IncidentController struct {
	BaseController

	api *backend.Client
}

// NewIncidentController creates a new IncidentController and initializes its routes.
func NewIncidentController(g *gin.RouterGroup, api *backend.Client) *IncidentController {
	a := &IncidentController{api: api}
	a.initRouter(g)
	return a
}

func (a *IncidentController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.list)
	g.GET("/incidents/:id", a.detail)
	g.GET("/add", a.form)
	g.GET("/edit/:id", a.form)

	g.POST("/add", a.submit)
	g.POST("/edit/:id", a.submit)
	g.POST("/incidents/:id/delete", a.delete)
}

// list renders the incident table, the empty-state message when the
// collection is empty, or the static fetch error.
func (a *IncidentController) list(c *gin.Context) {
	a.renderList(c, "")
}

func (a *IncidentController) renderList(c *gin.Context, deleteError string) {
	incidents, err := a.api.ListIncidents(c.Request.Context(), session.GetToken(c))
	if err != nil {
		logger.Warning("list incidents failed:", err)
		html(c, "incident_list.html", "pages.incidents.title", gin.H{
			"error":       I18nWeb(c, "pages.incidents.fetchError"),
			"deleteError": deleteError,
		})
		return
	}

	html(c, "incident_list.html", "pages.incidents.title", gin.H{
		"incidents":   incidents,
		"deleteError": deleteError,
	})
}

// detail renders one incident. Error, not-found and loaded are three
// distinct terminal states.
func (a *IncidentController) detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		html(c, "incident_detail.html", "pages.incidentDetail.title", gin.H{
			"notFound": true,
		})
		return
	}

	incident, err := a.api.GetIncident(c.Request.Context(), session.GetToken(c), id)
	if err != nil {
		if backend.IsNotFound(err) {
			html(c, "incident_detail.html", "pages.incidentDetail.title", gin.H{
				"notFound": true,
			})
			return
		}
		logger.Warning("get incident failed:", err)
		html(c, "incident_detail.html", "pages.incidentDetail.title", gin.H{
			"error": I18nWeb(c, "pages.incidentDetail.fetchError"),
		})
		return
	}

	html(c, "incident_detail.html", "pages.incidentDetail.title", gin.H{
		"incident": incident,
		// one paragraph per line, order preserved; template escaping
		// keeps user content inert
		"paragraphs": strings.Split(incident.Description, "\n"),
	})
}

// form renders the create form blank or the edit form seeded from the
// existing record.
func (a *IncidentController) form(c *gin.Context) {
	idParam := c.Param("id")
	if idParam == "" {
		a.renderForm(c, false, 0, entity.IncidentForm{}, "")
		return
	}

	id, err := strconv.Atoi(idParam)
	if err != nil {
		a.renderForm(c, true, 0, entity.IncidentForm{}, I18nWeb(c, "pages.incidentForm.fetchError"))
		return
	}

	incident, err := a.api.GetIncident(c.Request.Context(), session.GetToken(c), id)
	if err != nil {
		logger.Warning("prefetch incident failed:", err)
		a.renderForm(c, true, id, entity.IncidentForm{}, I18nWeb(c, "pages.incidentForm.fetchError"))
		return
	}

	a.renderForm(c, true, id, entity.IncidentForm{
		Title:       incident.Title,
		Description: incident.Description,
		Severity:    incident.Severity,
		Bank:        incident.Bank,
	}, "")
}

// submit assembles the four fields into one payload and sends a create or a
// full-replacement update. Success navigates back to the list; failure
// re-renders the populated form for retry.
func (a *IncidentController) submit(c *gin.Context) {
	isEdit := false
	id := 0
	if idParam := c.Param("id"); idParam != "" {
		var err error
		if id, err = strconv.Atoi(idParam); err != nil {
			c.Redirect(http.StatusFound, c.GetString("base_path"))
			return
		}
		isEdit = true
	}

	var form entity.IncidentForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderForm(c, isEdit, id, form, I18nWeb(c, "pages.incidentForm.saveError"))
		return
	}

	payload := backend.IncidentUpsert{
		Title:       form.Title,
		Description: form.Description,
		Severity:    form.Severity,
		Bank:        form.Bank,
	}

	token := session.GetToken(c)
	var err error
	if isEdit {
		_, err = a.api.UpdateIncident(c.Request.Context(), token, id, payload)
	} else {
		_, err = a.api.CreateIncident(c.Request.Context(), token, payload)
	}
	if err != nil {
		logger.Warning("save incident failed:", err)
		a.renderForm(c, isEdit, id, form, I18nWeb(c, "pages.incidentForm.saveError"))
		return
	}

	c.Redirect(http.StatusFound, c.GetString("base_path"))
}

// delete removes an incident by id. The AJAX path answers with the Msg
// envelope so the list page can drop the row without reloading; the plain
// path redirects to the list on success and re-renders it with the rows
// intact when the backend refuses.
func (a *IncidentController) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		if isAjax(c) {
			jsonMsg(c, I18nWeb(c, "pages.incidents.deleteAction"),
				common.NewError("invalid incident id:", c.Param("id")))
			return
		}
		c.Redirect(http.StatusFound, c.GetString("base_path"))
		return
	}

	err = a.api.DeleteIncident(c.Request.Context(), session.GetToken(c), id)
	if err != nil {
		logger.Warning("delete incident failed:", err)
	}

	if isAjax(c) {
		jsonMsg(c, I18nWeb(c, "pages.incidents.deleteAction"), err)
		return
	}
	if err != nil {
		a.renderList(c, I18nWeb(c, "pages.incidents.deleteError"))
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path"))
}

func (a *IncidentController) renderForm(c *gin.Context, isEdit bool, id int, form entity.IncidentForm, errMsg string) {
	title := "pages.incidentForm.addTitle"
	if isEdit {
		title = "pages.incidentForm.editTitle"
	}
	html(c, "incident_form.html", title, gin.H{
		"isEdit":     isEdit,
		"id":         id,
		"form":       form,
		"severities": backend.Severities,
		"error":      errMsg,
	})
}
