package yearbook

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/studybuddy/backend/internal/models"
)

// SchoolYear labels the academic year containing now. The year rolls
// over in September.
func SchoolYear(now time.Time) string {
	year := now.Year()
	if now.Month() >= time.September {
		return fmt.Sprintf("%d-%d", year, year+1)
	}
	return fmt.Sprintf("%d-%d", year-1, year)
}

func SystemPrompt() string {
	return `You are a warm, thoughtful yearbook writer for a student life app. You turn a student's journal entries into a personal yearbook chapter written in Markdown.

Rules:
- Write in second person, addressed to the student.
- Organize the chapter chronologically with Markdown section headings.
- Weave in the people the student mentioned, by name.
- Keep the tone celebratory but honest; do not invent events that are not in the journal entries.
- Respond with ONLY a JSON object, no code fences, in this exact shape:
{
  "content": "<the full yearbook chapter as Markdown>",
  "main_themes": ["<3-5 short theme words drawn from the entries>"]
}`
}

type promptMemory struct {
	Date      string   `json:"date"`
	Title     string   `json:"title"`
	Journal   string   `json:"journal"`
	Sentiment string   `json:"sentiment,omitempty"`
	People    []string `json:"people,omitempty"`
}

// BuildUserPrompt assembles the generation request from the student's
// memories for one school year.
func BuildUserPrompt(studentName, schoolYear string, memories []models.Memory) (string, error) {
	entries := make([]promptMemory, 0, len(memories))
	for _, m := range memories {
		entries = append(entries, promptMemory{
			Date:      m.MemoryDate,
			Title:     m.Title,
			Journal:   m.Journal,
			Sentiment: m.Sentiment,
			People:    m.People,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal memories: %w", err)
	}

	return fmt.Sprintf(`Write the yearbook chapter for %s covering the %s school year.

Here are the journal entries, oldest first:

%s`, studentName, schoolYear, string(data)), nil
}
