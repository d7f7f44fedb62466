package conversation

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one stored conversation turn. StructuredData keeps the raw data
// section of an assistant reply alongside its markdown.
type Message struct {
	ID             string          `json:"id"`
	Role           string          `json:"role"`
	Content        string          `json:"content"`
	TsMs           int64           `json:"timestamp"`
	StructuredData json.RawMessage `json:"structuredData,omitempty"`
}

func NewID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
