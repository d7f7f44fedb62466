// README: Built-in system prompt registry; prompt bodies live in prompts/.
package prompt

import (
	_ "embed"
)

// SystemPrompt is one selectable system prompt.
type SystemPrompt struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

//go:embed prompts/default.md
var defaultPrompt string

//go:embed prompts/location_specific.md
var locationSpecificPrompt string

var builtIn = []SystemPrompt{
	{ID: "default", Name: "Default Roadtrip Prompt", Content: defaultPrompt},
	{ID: "location_specific", Name: "Location-Specific Prompt", Content: locationSpecificPrompt},
}

// Available lists the selectable prompts.
func Available() []SystemPrompt {
	out := make([]SystemPrompt, len(builtIn))
	copy(out, builtIn)
	return out
}

// GetByID looks up a prompt by id.
func GetByID(id string) (*SystemPrompt, bool) {
	for i := range builtIn {
		if builtIn[i].ID == id {
			p := builtIn[i]
			return &p, true
		}
	}
	return nil, false
}
