// README: HTML page handlers for the planner and assistant forms.
package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"travelplanner/internal/modules/itinerary"
	"travelplanner/internal/modules/pricing"
	"travelplanner/internal/service"
)

const pageTemplate = "page.html"

type PageHandler struct {
	planner   Planner
	assistant Asker
	theme     string
	timeout   time.Duration
}

func NewPageHandler(planner Planner, asker Asker, theme string, timeout time.Duration) *PageHandler {
	return &PageHandler{planner: planner, assistant: asker, theme: theme, timeout: timeout}
}

// PlanForm holds the submitted planner fields so the form can be re-rendered.
type PlanForm struct {
	City      string
	Interests string
	Days      string
	Budget    string
}

// PageData is the template model for page.html.
type PageData struct {
	Theme   string
	Tiers   []pricing.Tier
	MinDays int
	MaxDays int
	Tab     string

	Form      PlanForm
	Display   string
	TotalCost string
	PlanError string
	Query     string
	Answer    string
	AskError  string
}

func (h *PageHandler) base(tab string) PageData {
	return PageData{
		Theme:   h.theme,
		Tiers:   pricing.Tiers(),
		MinDays: itinerary.MinDays,
		MaxDays: itinerary.MaxDays,
		Tab:     tab,
		Form:    PlanForm{Days: "3", Budget: string(pricing.TierMidRange)},
	}
}

// Index handles GET /.
func (h *PageHandler) Index(c *gin.Context) {
	tab := "plan"
	if c.Query("tab") == "ask" {
		tab = "ask"
	}
	c.HTML(http.StatusOK, pageTemplate, h.base(tab))
}

// Plan handles POST /plan.
func (h *PageHandler) Plan(c *gin.Context) {
	data := h.base("plan")
	data.Form = PlanForm{
		City:      c.PostForm("city"),
		Interests: c.PostForm("interests"),
		Days:      c.PostForm("days"),
		Budget:    c.PostForm("budget"),
	}

	days, err := strconv.Atoi(strings.TrimSpace(data.Form.Days))
	if err != nil {
		data.PlanError = "days: must be a whole number"
		c.HTML(http.StatusBadRequest, pageTemplate, data)
		return
	}

	ctx, cancel := withAITimeout(c, h.timeout)
	defer cancel()

	res, err := h.planner.Plan(ctx, service.PlanInput{
		City:      data.Form.City,
		Interests: data.Form.Interests,
		Days:      days,
		Budget:    data.Form.Budget,
	})
	if err != nil {
		_ = c.Error(err)
		status, msg := errorStatus(err)
		data.PlanError = msg
		c.HTML(status, pageTemplate, data)
		return
	}

	data.Display = service.Format(res)
	data.TotalCost = res.TotalCost.String()
	c.HTML(http.StatusOK, pageTemplate, data)
}

// Ask handles POST /ask.
func (h *PageHandler) Ask(c *gin.Context) {
	data := h.base("ask")
	data.Query = c.PostForm("query")

	ctx, cancel := withAITimeout(c, h.timeout)
	defer cancel()

	answer, err := h.assistant.Ask(ctx, data.Query)
	if err != nil {
		_ = c.Error(err)
		status, msg := errorStatus(err)
		data.AskError = msg
		c.HTML(status, pageTemplate, data)
		return
	}
	data.Answer = answer
	c.HTML(http.StatusOK, pageTemplate, data)
}
