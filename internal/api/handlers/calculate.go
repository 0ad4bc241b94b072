package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/witnessos/engine-core/internal/engine"
	"github.com/witnessos/engine-core/internal/orchestrator"
)

// CalculateHandler runs a single named engine through the orchestrator
// (§4.4, §4.8 POST /engines/:name/calculate).
type CalculateHandler struct {
	orch *orchestrator.Orchestrator
}

func NewCalculateHandler(orch *orchestrator.Orchestrator) *CalculateHandler {
	return &CalculateHandler{orch: orch}
}

func (h *CalculateHandler) Calculate(c *gin.Context) {
	name := c.Param("name")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(engine.NewInvalidInput("body", err))
		c.Abort()
		return
	}

	envelope, err := h.orch.Run(c.Request.Context(), name, body)
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, envelope)
}
