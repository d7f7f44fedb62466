package ai

import (
	"encoding/json"
	"errors"
)

// Chat roles used on the wire.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single chat-style message sent to the completion endpoint.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseSections is the decomposed completion reply: a markdown block for
// immediate display and an optional structured-data block.
// JSON is nil when the reply carried no parseable data section.
type ResponseSections struct {
	Markdown string          `json:"markdown"`
	JSON     json.RawMessage `json:"json"`
}

var (
	// ErrMissingCredential is returned when no API key is configured.
	ErrMissingCredential = errors.New("missing api key")
	// ErrRequestFailed wraps transport and endpoint failures. Retrying is the
	// caller's decision.
	ErrRequestFailed = errors.New("completion request failed")
)
