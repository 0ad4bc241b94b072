package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/witnessos/engine-core/internal/engine"
	"github.com/witnessos/engine-core/internal/workflow"
)

// WorkflowHandler runs a named workflow recipe through the workflow manager
// (§4.7, §4.8 POST /workflows/:name/run).
type WorkflowHandler struct {
	manager *workflow.Manager
}

func NewWorkflowHandler(manager *workflow.Manager) *WorkflowHandler {
	return &WorkflowHandler{manager: manager}
}

func (h *WorkflowHandler) Run(c *gin.Context) {
	name := c.Param("name")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(engine.NewInvalidInput("body", err))
		c.Abort()
		return
	}

	result, err := h.manager.Run(c.Request.Context(), name, body)
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListWorkflows returns the names of every registered workflow recipe.
func (h *WorkflowHandler) ListWorkflows(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"workflows": h.manager.Names()})
}
