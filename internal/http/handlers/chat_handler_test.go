// README: Tests for chat handler request validation and error mapping.
package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/iamneilroberts/roadtrip-buddy/internal/ai"
	"github.com/iamneilroberts/roadtrip-buddy/internal/modules/conversation"
	"github.com/iamneilroberts/roadtrip-buddy/internal/service"
)

type stubRecommender struct {
	lastReq service.Request
	result  service.Result
	err     error
}

func (s *stubRecommender) Recommend(_ context.Context, req service.Request) (service.Result, error) {
	s.lastReq = req
	if s.err != nil {
		return service.Result{}, s.err
	}
	return s.result, nil
}

func newChatRouter(stub *stubRecommender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewChatHandler(stub, nil)
	r.POST("/api/chat", h.Chat)
	return r
}

func postChat(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChat_InvalidBody(t *testing.T) {
	r := newChatRouter(&stubRecommender{})
	if w := postChat(r, "{not json"); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestChat_MissingMessage(t *testing.T) {
	r := newChatRouter(&stubRecommender{})
	if w := postChat(r, `{"mode":"quick"}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestChat_RejectsUnknownMode(t *testing.T) {
	r := newChatRouter(&stubRecommender{})
	if w := postChat(r, `{"message":"hi","mode":"verbose"}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestChat_DefaultsConversationAndMode(t *testing.T) {
	stub := &stubRecommender{result: service.Result{
		Reply: conversation.Message{ID: "r1", Role: conversation.RoleAssistant, Content: "hello"},
	}}
	r := newChatRouter(stub)

	w := postChat(r, `{"message":"hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if stub.lastReq.ConversationID != DefaultConversationID {
		t.Errorf("conversation id not defaulted: %q", stub.lastReq.ConversationID)
	}
	if stub.lastReq.Mode != "quick" {
		t.Errorf("mode not defaulted: %q", stub.lastReq.Mode)
	}
	if !strings.Contains(w.Body.String(), `"hello"`) {
		t.Errorf("reply missing from body: %s", w.Body.String())
	}
}

func TestChat_CompletionFailureMapsToBadGateway(t *testing.T) {
	r := newChatRouter(&stubRecommender{err: ai.ErrRequestFailed})
	if w := postChat(r, `{"message":"hi"}`); w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
}
