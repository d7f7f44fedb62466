package conversation

import (
	"context"
	"fmt"
	"strings"
)

const (
	summaryTurns      = 5
	summaryMaxContent = 150
)

// Service layers conversation operations over the store.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Append adds msg to the conversation and returns the updated message list.
func (s *Service) Append(ctx context.Context, conversationID string, msg Message) ([]Message, error) {
	messages, err := s.store.Load(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	messages = append(messages, msg)
	if err := s.store.Save(ctx, conversationID, messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *Service) Messages(ctx context.Context, conversationID string) ([]Message, error) {
	return s.store.Load(ctx, conversationID)
}

// Clear empties the conversation while keeping it addressable.
func (s *Service) Clear(ctx context.Context, conversationID string) error {
	return s.store.Save(ctx, conversationID, []Message{})
}

// Conversations lists all known conversation ids.
func (s *Service) Conversations(ctx context.Context) ([]string, error) {
	return s.store.Index(ctx)
}

// Summary condenses the tail of a conversation into a prompt-sized digest.
// Only the last few turns are kept and long contents are truncated.
func Summary(messages []Message) string {
	if len(messages) == 0 {
		return ""
	}
	start := 0
	if len(messages) > summaryTurns {
		start = len(messages) - summaryTurns
	}

	lines := make([]string, 0, summaryTurns)
	for _, msg := range messages[start:] {
		speaker := "User"
		if msg.Role == RoleAssistant {
			speaker = "Assistant"
		}
		content := msg.Content
		if len(content) > summaryMaxContent {
			content = content[:summaryMaxContent] + "..."
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, content))
	}
	return strings.Join(lines, "\n\n")
}
