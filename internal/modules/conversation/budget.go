package conversation

import (
	"github.com/iamneilroberts/roadtrip-buddy/internal/ai"
)

// ResponseReserveTokens is held back from every window so the model has room
// to answer.
const ResponseReserveTokens = 1000

const defaultTokenLimit = 4096

var modelTokenLimits = map[string]int{
	"gemini-2.0-flash": 128000,
	"gemini-1.5-flash": 32768,
	"gemini-1.5-pro":   8192,
}

// EstimateTokens approximates the token count of s at four characters per
// token, rounding up.
func EstimateTokens(s string) int {
	return (len(s) + 3) / 4
}

// TokenLimit returns the context window size for modelID, falling back to a
// conservative default for unknown models.
func TokenLimit(modelID string) int {
	if limit, ok := modelTokenLimits[modelID]; ok {
		return limit
	}
	return defaultTokenLimit
}

// WindowForModel assembles the outbound turn list: the system prompt first,
// then as many of the newest messages as fit the model's budget, restored to
// chronological order. The walk starts from the newest message and stops at
// the first one that would overflow, so a large middle message also drops
// everything older than itself.
func WindowForModel(systemPrompt string, messages []Message, modelID string) []ai.Turn {
	available := TokenLimit(modelID) - EstimateTokens(systemPrompt) - ResponseReserveTokens

	kept := make([]Message, 0, len(messages))
	used := 0
	for i := len(messages) - 1; i >= 0; i-- {
		cost := EstimateTokens(messages[i].Content)
		if used+cost > available {
			break
		}
		used += cost
		kept = append(kept, messages[i])
	}

	turns := make([]ai.Turn, 0, len(kept)+1)
	turns = append(turns, ai.Turn{Role: ai.RoleSystem, Content: systemPrompt})
	for i := len(kept) - 1; i >= 0; i-- {
		turns = append(turns, ai.Turn{Role: kept[i].Role, Content: kept[i].Content})
	}
	return turns
}
