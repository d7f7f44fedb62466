// README: Gemini-backed completion provider; chat history replay per request.
package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/iamneilroberts/roadtrip-buddy/internal/debug"
)

const (
	defaultTemperature     = 0.7
	defaultMaxOutputTokens = 1000
)

// GeminiProvider talks to the Gemini API. One client is shared across
// requests; the chat session is rebuilt per call from the supplied turns so
// the provider itself stays stateless.
type GeminiProvider struct {
	client  *genai.Client
	modelID string
	hub     *debug.Hub
}

// NewGeminiProvider creates a provider bound to modelID. hub may be nil.
func NewGeminiProvider(ctx context.Context, apiKey, modelID string, hub *debug.Hub) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, ErrMissingCredential
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{client: client, modelID: modelID, hub: hub}, nil
}

func (p *GeminiProvider) ModelID() string {
	return p.modelID
}

// Recommend replays turns as chat history, sends userMessage, and splits the
// reply into its sections.
func (p *GeminiProvider) Recommend(ctx context.Context, turns []Turn, userMessage string) (ResponseSections, error) {
	model := p.client.GenerativeModel(p.modelID)
	model.SetTemperature(defaultTemperature)
	model.SetMaxOutputTokens(defaultMaxOutputTokens)

	history := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		switch turn.Role {
		case RoleSystem:
			model.SystemInstruction = &genai.Content{
				Parts: []genai.Part{genai.Text(turn.Content)},
			}
		case RoleAssistant:
			history = append(history, &genai.Content{
				Role:  "model",
				Parts: []genai.Part{genai.Text(turn.Content)},
			})
		default:
			history = append(history, &genai.Content{
				Role:  "user",
				Parts: []genai.Part{genai.Text(turn.Content)},
			})
		}
	}

	p.emit(debug.KindRequest, map[string]any{
		"model":   p.modelID,
		"turns":   len(turns),
		"message": userMessage,
	})

	cs := model.StartChat()
	cs.History = history

	resp, err := cs.SendMessage(ctx, genai.Text(userMessage))
	if err != nil {
		p.emit(debug.KindError, map[string]any{"error": err.Error()})
		return ResponseSections{}, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	content := extractText(resp)
	if content == "" {
		p.emit(debug.KindError, map[string]any{"error": "empty completion"})
		return ResponseSections{}, fmt.Errorf("%w: empty completion", ErrRequestFailed)
	}
	p.emit(debug.KindResponse, map[string]any{"content": content})

	sections := SplitSections(content)
	p.emit(debug.KindParsed, sections)
	return sections, nil
}

func (p *GeminiProvider) Close() {
	if err := p.client.Close(); err != nil {
		log.Printf("close gemini client: %v", err)
	}
}

func (p *GeminiProvider) emit(kind debug.Kind, data any) {
	if p.hub != nil {
		p.hub.Emit(kind, data)
	}
}

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	return out
}
