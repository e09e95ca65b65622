package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
	"github.com/bukupintar/bukupintar_app/internal/dto"
	"github.com/bukupintar/bukupintar_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assistantHandler handles HTTP requests to the AI business assistant.
type assistantHandler struct {
	assistantService portssvc.AssistantSvcFacade
}

// newAssistantHandler creates a new assistantHandler.
func newAssistantHandler(as portssvc.AssistantSvcFacade) *assistantHandler {
	return &assistantHandler{
		assistantService: as,
	}
}

// registerAssistantRoutes registers the assistant query route. The
// extra middleware (rate limiting) guards the upstream model quota.
func registerAssistantRoutes(rg *gin.RouterGroup, assistantService portssvc.AssistantSvcFacade, mw ...gin.HandlerFunc) {
	h := newAssistantHandler(assistantService)

	assistant := rg.Group("/assistant", mw...)
	{
		assistant.POST("/query", h.query)
	}
}

// query godoc
// @Summary Ask the business assistant a question
// @Description Answers a free-text question grounded on the current business data
// @Tags assistant
// @Accept json
// @Produce json
// @Param query body dto.AssistantQueryRequest true "Question"
// @Success 200 {object} dto.AssistantReplyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to query assistant"
// @Router /assistant/query [post]
func (h *assistantHandler) query(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AssistantQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for assistant query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	reply, err := h.assistantService.Query(c.Request.Context(), req.Text)
	if err != nil {
		logger.Error("Failed to query assistant", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query assistant"})
		return
	}

	c.JSON(http.StatusOK, reply)
}
