// README: Assistant handler; free-form travel questions passed straight to the model.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistant Asker
	timeout   time.Duration
}

func NewAssistantHandler(asker Asker, timeout time.Duration) *AssistantHandler {
	return &AssistantHandler{assistant: asker, timeout: timeout}
}

type askReq struct {
	Query string `json:"query"`
}

// Ask handles POST /api/ask.
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := withAITimeout(c, h.timeout)
	defer cancel()

	answer, err := h.assistant.Ask(ctx, req.Query)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"answer": answer})
}
