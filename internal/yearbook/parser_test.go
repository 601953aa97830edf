package yearbook

import "testing"

func TestParseResponse(t *testing.T) {
	raw := `{"content": "# My Year\n\nA good one.", "main_themes": ["friendship", "growth"]}`

	generated, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	if generated.Content != "# My Year\n\nA good one." {
		t.Errorf("unexpected content: %q", generated.Content)
	}
	if len(generated.MainThemes) != 2 || generated.MainThemes[0] != "friendship" {
		t.Errorf("unexpected themes: %v", generated.MainThemes)
	}
}

func TestParseResponseStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"content\": \"chapter\", \"main_themes\": []}\n```"

	generated, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	if generated.Content != "chapter" {
		t.Errorf("unexpected content: %q", generated.Content)
	}
}

func TestParseResponseMissingThemes(t *testing.T) {
	generated, err := ParseResponse(`{"content": "chapter"}`)
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	if generated.MainThemes == nil || len(generated.MainThemes) != 0 {
		t.Errorf("expected empty theme slice, got %v", generated.MainThemes)
	}
}

func TestParseResponseRejectsEmptyContent(t *testing.T) {
	if _, err := ParseResponse(`{"content": "  ", "main_themes": ["x"]}`); err == nil {
		t.Error("expected error for empty content")
	}
	if _, err := ParseResponse(`not json`); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
