// Package board holds the game board model: an ordered grid of categories and
// questions built once per room from an immutable dataset template. Canonical
// answers live server-side only; clients ever see redacted views.
package board

import (
	"encoding/json"
	"fmt"
	"os"
)

// QuestionTemplate is one question in a dataset template.
type QuestionTemplate struct {
	Value  int    `json:"value"`
	Clue   string `json:"clue"`
	Answer string `json:"answer"`
}

// CategoryTemplate is one category in a dataset template.
type CategoryTemplate struct {
	Name      string             `json:"name"`
	Questions []QuestionTemplate `json:"questions"`
}

// Question is a live board question. Answer is never serialized.
type Question struct {
	Value    int    `json:"value"`
	Clue     string `json:"clue"`
	Answer   string `json:"-"`
	Answered bool   `json:"answered"`
}

// Category is a live board category.
type Category struct {
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Board is the authoritative per-room game board.
type Board struct {
	Categories []Category
}

// New builds a fresh board from a template, all questions unanswered.
func New(tmpl []CategoryTemplate) *Board {
	b := &Board{Categories: make([]Category, 0, len(tmpl))}
	for _, ct := range tmpl {
		cat := Category{Name: ct.Name, Questions: make([]Question, 0, len(ct.Questions))}
		for _, qt := range ct.Questions {
			cat.Questions = append(cat.Questions, Question{
				Value:  qt.Value,
				Clue:   qt.Clue,
				Answer: qt.Answer,
			})
		}
		b.Categories = append(b.Categories, cat)
	}
	return b
}

// Question returns the question at the given indices, or false if either
// index is out of range.
func (b *Board) Question(categoryIdx, questionIdx int) (*Question, bool) {
	if categoryIdx < 0 || categoryIdx >= len(b.Categories) {
		return nil, false
	}
	cat := &b.Categories[categoryIdx]
	if questionIdx < 0 || questionIdx >= len(cat.Questions) {
		return nil, false
	}
	return &cat.Questions[questionIdx], true
}

// RedactedQuestion is the client-facing question view: value and answered
// flag only. Clue and answer are withheld until selection/never.
type RedactedQuestion struct {
	Value    int  `json:"value"`
	Answered bool `json:"answered"`
}

// RedactedCategory is the client-facing category view.
type RedactedCategory struct {
	Name      string             `json:"name"`
	Questions []RedactedQuestion `json:"questions"`
}

// Redacted returns the client-safe view of the board.
func (b *Board) Redacted() []RedactedCategory {
	out := make([]RedactedCategory, 0, len(b.Categories))
	for _, cat := range b.Categories {
		rc := RedactedCategory{Name: cat.Name, Questions: make([]RedactedQuestion, 0, len(cat.Questions))}
		for _, q := range cat.Questions {
			rc.Questions = append(rc.Questions, RedactedQuestion{Value: q.Value, Answered: q.Answered})
		}
		out = append(out, rc)
	}
	return out
}

// ValidateTemplate checks that a dataset template is usable as a game board.
func ValidateTemplate(tmpl []CategoryTemplate) error {
	if len(tmpl) == 0 {
		return fmt.Errorf("dataset has no categories")
	}
	for i, cat := range tmpl {
		if cat.Name == "" {
			return fmt.Errorf("category %d has no name", i)
		}
		if len(cat.Questions) == 0 {
			return fmt.Errorf("category %q has no questions", cat.Name)
		}
		for j, q := range cat.Questions {
			if q.Value <= 0 {
				return fmt.Errorf("category %q question %d has non-positive value %d", cat.Name, j, q.Value)
			}
			if q.Clue == "" {
				return fmt.Errorf("category %q question %d has no clue", cat.Name, j)
			}
			if q.Answer == "" {
				return fmt.Errorf("category %q question %d has no answer", cat.Name, j)
			}
		}
	}
	return nil
}

// LoadTemplate reads and validates a dataset template from a JSON file.
func LoadTemplate(path string) ([]CategoryTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var tmpl []CategoryTemplate
	if err := json.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if err := ValidateTemplate(tmpl); err != nil {
		return nil, fmt.Errorf("invalid dataset %s: %w", path, err)
	}
	return tmpl, nil
}
