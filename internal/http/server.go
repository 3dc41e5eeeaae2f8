// README: API gateway; builds the gin engine, registers routes and delegates to module services.
package http

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"travelplanner/internal/http/handlers"
	"travelplanner/internal/http/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

type ServerDeps struct {
	Planner   handlers.Planner
	Assistant handlers.Asker
	Log       *zap.Logger
	Theme     string
	AITimeout time.Duration
	// Limiter guards the LLM-backed routes. Nil disables rate limiting.
	Limiter *middleware.RateLimiter
}

type Server struct {
	trip    *handlers.TripHandler
	ask     *handlers.AssistantHandler
	page    *handlers.PageHandler
	log     *zap.Logger
	limiter *middleware.RateLimiter
}

func NewServer(deps ServerDeps) *Server {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		trip:    handlers.NewTripHandler(deps.Planner, deps.AITimeout),
		ask:     handlers.NewAssistantHandler(deps.Assistant, deps.AITimeout),
		page:    handlers.NewPageHandler(deps.Planner, deps.Assistant, deps.Theme, deps.AITimeout),
		log:     log,
		limiter: deps.Limiter,
	}
}

// Routes builds the engine. Template parsing failures panic since the templates are embedded.
func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(s.log),
		middleware.Logging(s.log),
		middleware.Metrics(),
	)
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	limited := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if s.limiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{s.limiter.Middleware(), h}
	}

	r.GET("/", s.page.Index)
	r.POST("/plan", limited(s.page.Plan)...)
	r.POST("/ask", limited(s.page.Ask)...)

	api := r.Group("/api")
	api.POST("/itineraries", limited(s.trip.Plan)...)
	api.POST("/estimates", s.trip.Estimate)
	api.GET("/budget-tiers", s.trip.Tiers)
	api.POST("/ask", limited(s.ask.Ask)...)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return r
}
