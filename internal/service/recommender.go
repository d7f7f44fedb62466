// README: Recommendation pipeline; context assembly, budgeting, completion, persistence.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/iamneilroberts/roadtrip-buddy/internal/ai"
	"github.com/iamneilroberts/roadtrip-buddy/internal/modules/conversation"
	"github.com/iamneilroberts/roadtrip-buddy/internal/modules/location"
	"github.com/iamneilroberts/roadtrip-buddy/internal/prompt"
	"github.com/iamneilroberts/roadtrip-buddy/internal/types"
)

const timeLayout = "1/2/2006, 3:04:05 PM"

// Recommender assembles travel context around each user message, sends the
// budgeted window to the completion provider, and persists both sides of the
// exchange.
type Recommender struct {
	provider ai.Provider
	loc      *location.Service
	conv     *conversation.Service
	prompts  *prompt.Store
}

type Request struct {
	ConversationID string
	Message        string
	Mode           types.Mode
}

type Result struct {
	Reply    conversation.Message
	Messages []conversation.Message
}

func NewRecommender(provider ai.Provider, loc *location.Service, conv *conversation.Service, prompts *prompt.Store) *Recommender {
	return &Recommender{provider: provider, loc: loc, conv: conv, prompts: prompts}
}

// Recommend runs one round trip. The user message is stored before the
// completion call so a failed request still leaves the question in history.
func (r *Recommender) Recommend(ctx context.Context, req Request) (Result, error) {
	promptID, err := r.prompts.SelectedID(ctx)
	if err != nil {
		return Result{}, err
	}
	selected, ok := prompt.GetByID(promptID)
	if !ok {
		selected, _ = prompt.GetByID(prompt.DefaultID)
	}

	history, err := r.conv.Messages(ctx, req.ConversationID)
	if err != nil {
		return Result{}, err
	}

	snap := r.loc.Snapshot()
	system := prompt.Format(selected.Content, prompt.Context{
		CurrentLocation:     snap.Current,
		Destination:         snap.Destination,
		History:             snap.History,
		CurrentTime:         time.Now().Format(timeLayout),
		Mode:                req.Mode,
		ConversationSummary: conversation.Summary(history),
	})

	turns := conversation.WindowForModel(system, history, r.provider.ModelID())

	userMsg := conversation.Message{
		ID:      conversation.NewID(),
		Role:    conversation.RoleUser,
		Content: req.Message,
		TsMs:    time.Now().UnixMilli(),
	}
	if _, err := r.conv.Append(ctx, req.ConversationID, userMsg); err != nil {
		return Result{}, fmt.Errorf("store user message: %w", err)
	}

	sections, err := r.provider.Recommend(ctx, turns, req.Message)
	if err != nil {
		// The user message stays stored so a retry carries the context.
		return Result{}, err
	}

	reply := conversation.Message{
		ID:             conversation.NewID(),
		Role:           conversation.RoleAssistant,
		Content:        sections.Markdown,
		TsMs:           time.Now().UnixMilli(),
		StructuredData: sections.JSON,
	}
	messages, err := r.conv.Append(ctx, req.ConversationID, reply)
	if err != nil {
		return Result{}, fmt.Errorf("store reply: %w", err)
	}
	return Result{Reply: reply, Messages: messages}, nil
}
