// README: Prompt handlers; list built-ins and select the active one.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamneilroberts/roadtrip-buddy/internal/prompt"
)

type PromptHandler struct {
	store *prompt.Store
}

func NewPromptHandler(store *prompt.Store) *PromptHandler {
	return &PromptHandler{store: store}
}

func (h *PromptHandler) List(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"prompts": prompt.Available()})
}

func (h *PromptHandler) Selected(c *gin.Context) {
	id, err := h.store.SelectedID(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"selected": id})
}

type selectPromptRequest struct {
	ID string `json:"id"`
}

func (h *PromptHandler) Select(c *gin.Context) {
	var req selectPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		writeError(c, http.StatusBadRequest, "prompt id is required")
		return
	}
	if err := h.store.SetSelectedID(c.Request.Context(), req.ID); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"selected": req.ID})
}
