// README: Debug handlers; expose and clear the recent event buffer.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamneilroberts/roadtrip-buddy/internal/debug"
)

type DebugHandler struct {
	hub *debug.Hub
}

func NewDebugHandler(hub *debug.Hub) *DebugHandler {
	return &DebugHandler{hub: hub}
}

func (h *DebugHandler) Logs(c *gin.Context) {
	events := h.hub.Recent()
	if events == nil {
		events = []debug.Event{}
	}
	writeJSON(c, http.StatusOK, gin.H{"events": events})
}

func (h *DebugHandler) Clear(c *gin.Context) {
	h.hub.Clear()
	writeJSON(c, http.StatusOK, gin.H{"status": "cleared"})
}
