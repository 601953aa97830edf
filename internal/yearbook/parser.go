package yearbook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GeneratedYearbook is the JSON shape the model is instructed to return.
type GeneratedYearbook struct {
	Content    string   `json:"content"`
	MainThemes []string `json:"main_themes"`
}

// ParseResponse extracts and validates the generated chapter from the
// raw model output.
func ParseResponse(responseBody string) (*GeneratedYearbook, error) {
	cleaned := stripCodeFences(responseBody)

	var generated GeneratedYearbook
	if err := json.Unmarshal([]byte(cleaned), &generated); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if strings.TrimSpace(generated.Content) == "" {
		return nil, fmt.Errorf("generated yearbook has empty content")
	}
	if generated.MainThemes == nil {
		generated.MainThemes = []string{}
	}

	return &generated, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
