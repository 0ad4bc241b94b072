package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/witnessos/engine-core/internal/engine"
)

var startedAt = time.Now()

// HealthHandler reports process liveness and the set of engines available,
// without touching any downstream dependency (§4.8).
type HealthHandler struct {
	registry *engine.Registry
}

func NewHealthHandler(registry *engine.Registry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"uptime":       time.Since(startedAt).String(),
		"engine_count": len(h.registry.Names()),
		"engines":      h.registry.Names(),
	})
}

// EngineHandler exposes the read-only engine catalogue.
type EngineHandler struct {
	registry *engine.Registry
}

func NewEngineHandler(registry *engine.Registry) *EngineHandler {
	return &EngineHandler{registry: registry}
}

// ListEngines returns every registered engine's name and description.
func (h *EngineHandler) ListEngines(c *gin.Context) {
	names := h.registry.Names()
	out := make([]gin.H, 0, len(names))
	for _, name := range names {
		e, ok := h.registry.Lookup(name)
		if !ok {
			continue
		}
		out = append(out, gin.H{
			"name":             e.Name(),
			"description":      e.Description(),
			"requires_consent": e.RequiresConsent(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"engines": out})
}
