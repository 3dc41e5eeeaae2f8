// README: Base handler utilities (JSON helpers, error mapping, AI call deadline).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelplanner/internal/ai"
	"travelplanner/internal/modules/assistant"
	"travelplanner/internal/modules/itinerary"
	"travelplanner/internal/modules/pricing"
	"travelplanner/internal/service"
)

// Planner and Asker are the service surfaces the handlers call.
type Planner interface {
	Plan(ctx context.Context, in service.PlanInput) (*itinerary.Result, error)
}

type Asker interface {
	Ask(ctx context.Context, query string) (string, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// errorStatus maps service errors onto an HTTP status and a client-safe message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, itinerary.ErrValidation),
		errors.Is(err, pricing.ErrInvalidTier),
		errors.Is(err, pricing.ErrInvalidDays),
		errors.Is(err, assistant.ErrEmptyQuery):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ai.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "the AI provider did not answer in time"
	case errors.Is(err, ai.ErrUnauthorized):
		return http.StatusBadGateway, "the AI provider rejected the configured credential"
	case errors.Is(err, ai.ErrProvider):
		return http.StatusBadGateway, "the AI provider request failed"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func writeServiceError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, msg := errorStatus(err)
	writeError(c, status, msg)
}

// withAITimeout bounds one provider call by the request context and the configured timeout.
func withAITimeout(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}
