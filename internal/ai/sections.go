package ai

import (
	"encoding/json"
	"log"
	"strings"
)

const (
	markdownHeading = "## MARKDOWN_CONTENT"
	jsonHeading     = "## JSON_DATA"
)

// SplitSections decomposes a completion reply into its markdown and data
// sections. Replies that ignore the section format degrade gracefully: the
// whole text becomes markdown and JSON stays nil. A malformed data section is
// logged and dropped rather than failing the request.
func SplitSections(content string) ResponseSections {
	sections := ResponseSections{Markdown: content}

	jsonStart := strings.Index(content, jsonHeading)

	if mdStart := strings.Index(content, markdownHeading); mdStart >= 0 {
		md := content[mdStart+len(markdownHeading):]
		if jsonStart > mdStart {
			md = content[mdStart+len(markdownHeading) : jsonStart]
		}
		sections.Markdown = strings.TrimSpace(md)
	}

	if jsonStart < 0 {
		return sections
	}
	body := content[jsonStart+len(jsonHeading):]
	open := strings.Index(body, "{")
	close_ := strings.LastIndex(body, "}")
	if open < 0 || close_ < open {
		log.Printf("data section has no JSON object")
		return sections
	}
	raw := json.RawMessage(body[open : close_+1])
	if !json.Valid(raw) {
		log.Printf("data section is not valid JSON, dropping it")
		return sections
	}
	sections.JSON = raw
	return sections
}
