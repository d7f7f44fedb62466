// README: Chat handlers; recommendation requests and conversation management.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamneilroberts/roadtrip-buddy/internal/ai"
	"github.com/iamneilroberts/roadtrip-buddy/internal/modules/conversation"
	"github.com/iamneilroberts/roadtrip-buddy/internal/service"
	"github.com/iamneilroberts/roadtrip-buddy/internal/types"
)

// DefaultConversationID addresses the single active session when the client
// does not name one.
const DefaultConversationID = "current"

const completionTimeout = 30 * time.Second

// RecommendService is the slice of the recommendation pipeline the handler
// needs.
type RecommendService interface {
	Recommend(ctx context.Context, req service.Request) (service.Result, error)
}

type ChatHandler struct {
	recommender RecommendService
	conv        *conversation.Service
}

func NewChatHandler(recommender RecommendService, conv *conversation.Service) *ChatHandler {
	return &ChatHandler{recommender: recommender, conv: conv}
}

type chatRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
	Mode           string `json:"mode"`
}

type chatResponse struct {
	ConversationID string               `json:"conversation_id"`
	Reply          conversation.Message `json:"reply"`
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "message is required")
		return
	}
	if req.ConversationID == "" {
		req.ConversationID = DefaultConversationID
	}
	mode := types.Mode(req.Mode)
	if req.Mode == "" {
		mode = types.ModeQuick
	}
	if !mode.Valid() {
		writeError(c, http.StatusBadRequest, "mode must be quick or detailed")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), completionTimeout)
	defer cancel()

	result, err := h.recommender.Recommend(ctx, service.Request{
		ConversationID: req.ConversationID,
		Message:        req.Message,
		Mode:           mode,
	})
	if err != nil {
		if errors.Is(err, ai.ErrRequestFailed) {
			writeError(c, http.StatusBadGateway, "completion request failed")
			return
		}
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, chatResponse{ConversationID: req.ConversationID, Reply: result.Reply})
}

func (h *ChatHandler) Messages(c *gin.Context) {
	id := c.Param("id")
	messages, err := h.conv.Messages(c.Request.Context(), id)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if messages == nil {
		messages = []conversation.Message{}
	}
	writeJSON(c, http.StatusOK, gin.H{"conversation_id": id, "messages": messages})
}

func (h *ChatHandler) Clear(c *gin.Context) {
	id := c.Param("id")
	if err := h.conv.Clear(c.Request.Context(), id); err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "cleared"})
}

func (h *ChatHandler) Conversations(c *gin.Context) {
	ids, err := h.conv.Conversations(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(c, http.StatusOK, gin.H{"conversations": ids})
}
