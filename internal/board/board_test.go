package board

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	b := New(DefaultTemplate())

	if len(b.Categories) != 5 {
		t.Fatalf("Expected 5 categories, got %d", len(b.Categories))
	}
	for _, cat := range b.Categories {
		if len(cat.Questions) != 5 {
			t.Fatalf("Expected 5 questions in %s, got %d", cat.Name, len(cat.Questions))
		}
		for _, q := range cat.Questions {
			if q.Answered {
				t.Error("Fresh board must have no answered questions")
			}
			if q.Answer == "" {
				t.Error("Server-side question must keep its answer")
			}
		}
	}
}

func TestBoard_Question(t *testing.T) {
	b := New(DefaultTemplate())

	cases := []struct {
		name   string
		cat, q int
		found  bool
	}{
		{"first tile", 0, 0, true},
		{"last tile", 4, 4, true},
		{"category too high", 5, 0, false},
		{"question too high", 0, 5, false},
		{"negative category", -1, 0, false},
		{"negative question", 0, -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, found := b.Question(tc.cat, tc.q)
			if found != tc.found {
				t.Errorf("Question(%d, %d) found=%v, want %v", tc.cat, tc.q, found, tc.found)
			}
			if found && q == nil {
				t.Error("Found question must not be nil")
			}
		})
	}

	t.Run("returns live pointer", func(t *testing.T) {
		q, _ := b.Question(1, 1)
		q.Answered = true
		again, _ := b.Question(1, 1)
		if !again.Answered {
			t.Error("Expected mutation through the returned pointer to stick")
		}
	})
}

func TestBoard_Redacted(t *testing.T) {
	b := New(DefaultTemplate())
	q, _ := b.Question(0, 0)
	q.Answered = true

	redacted := b.Redacted()
	if !redacted[0].Questions[0].Answered {
		t.Error("Redacted view must reflect answered flags")
	}

	data, err := json.Marshal(redacted)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	payload := string(data)
	if strings.Contains(payload, `"answer":`) {
		t.Error("Redacted payload must not contain an answer field")
	}
	// No canonical answer text may survive redaction.
	for _, cat := range DefaultTemplate() {
		for _, qt := range cat.Questions {
			if strings.Contains(payload, qt.Answer) {
				t.Errorf("Redacted payload leaks answer %q", qt.Answer)
			}
		}
	}
	// Clues are withheld from board views too; only selection reveals them.
	if strings.Contains(payload, "clue") {
		t.Error("Redacted payload must not contain clues")
	}
}

func TestQuestionJSONExcludesAnswer(t *testing.T) {
	q := Question{Value: 200, Clue: "c", Answer: "secret", Answered: false}
	data, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), "secret") {
		t.Errorf("Question marshal leaks the answer: %s", data)
	}
}

func TestValidateTemplate(t *testing.T) {
	valid := func() []CategoryTemplate { return DefaultTemplate() }

	cases := []struct {
		name   string
		mutate func([]CategoryTemplate) []CategoryTemplate
		wantOK bool
	}{
		{"default dataset", func(t []CategoryTemplate) []CategoryTemplate { return t }, true},
		{"empty dataset", func([]CategoryTemplate) []CategoryTemplate { return nil }, false},
		{"unnamed category", func(t []CategoryTemplate) []CategoryTemplate {
			t[0].Name = ""
			return t
		}, false},
		{"empty category", func(t []CategoryTemplate) []CategoryTemplate {
			t[0].Questions = nil
			return t
		}, false},
		{"zero value", func(t []CategoryTemplate) []CategoryTemplate {
			t[0].Questions[0].Value = 0
			return t
		}, false},
		{"missing clue", func(t []CategoryTemplate) []CategoryTemplate {
			t[0].Questions[0].Clue = ""
			return t
		}, false},
		{"missing answer", func(t []CategoryTemplate) []CategoryTemplate {
			t[0].Questions[0].Answer = ""
			return t
		}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTemplate(tc.mutate(valid()))
			if (err == nil) != tc.wantOK {
				t.Errorf("ValidateTemplate error = %v, wantOK %v", err, tc.wantOK)
			}
		})
	}
}

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "ok.json")
		data, _ := json.Marshal(DefaultTemplate())
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
		tmpl, err := LoadTemplate(path)
		if err != nil {
			t.Fatalf("LoadTemplate failed: %v", err)
		}
		if len(tmpl) != 5 {
			t.Errorf("Expected 5 categories, got %d", len(tmpl))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadTemplate(filepath.Join(dir, "nope.json")); err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		os.WriteFile(path, []byte("{not json"), 0o644)
		if _, err := LoadTemplate(path); err == nil {
			t.Error("Expected error for malformed JSON")
		}
	})

	t.Run("invalid dataset", func(t *testing.T) {
		path := filepath.Join(dir, "empty.json")
		os.WriteFile(path, []byte("[]"), 0o644)
		if _, err := LoadTemplate(path); err == nil {
			t.Error("Expected error for empty dataset")
		}
	})
}
