// Package faq serves the static list of frequently asked questions.
package faq

import (
	"context"
	"math"
	"strings"

	"InvestAdvisor/internal/model"
	"InvestAdvisor/internal/translate"
)

// Selector picks a question either by its English text or by its position.
// A non-empty Text takes precedence over Index.
type Selector struct {
	Text  string
	Index any // JSON number; nil when absent
}

// Store holds the ordered FAQ entries. It is read-only after construction.
type Store struct {
	entries []model.FAQEntry
	byText  map[string]int
	tr      *translate.Service
}

// NewStore creates a store over the built-in entries.
func NewStore(tr *translate.Service) *Store {
	return NewStoreWith(defaultEntries, tr)
}

// NewStoreWith creates a store over entries, keeping their order.
func NewStoreWith(entries []model.FAQEntry, tr *translate.Service) *Store {
	s := &Store{
		entries: append([]model.FAQEntry(nil), entries...),
		byText:  make(map[string]int, len(entries)),
		tr:      tr,
	}
	for i, e := range s.entries {
		s.byText[e.Question] = i
	}
	return s
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// Entries returns a copy of the untranslated entries.
func (s *Store) Entries() []model.FAQEntry {
	return append([]model.FAQEntry(nil), s.entries...)
}

// Questions returns every question in order, each translated independently into lang.
func (s *Store) Questions(ctx context.Context, lang string) []string {
	qs := make([]string, len(s.entries))
	for i, e := range s.entries {
		qs[i] = e.Question
	}
	return translate.Texts(s.tr.Fields(ctx, lang, qs...))
}

// Answer resolves sel to an entry and returns its answer translated into lang.
func (s *Store) Answer(ctx context.Context, lang string, sel Selector) (string, error) {
	i, err := s.resolve(sel)
	if err != nil {
		return "", err
	}
	return s.tr.Field(ctx, s.entries[i].Answer, lang).Text, nil
}

func (s *Store) resolve(sel Selector) (int, error) {
	if text := strings.TrimSpace(sel.Text); text != "" {
		i, ok := s.byText[text]
		if !ok {
			return 0, &model.InputError{Field: "question_text", Reason: "question text not recognized"}
		}
		return i, nil
	}
	if sel.Index == nil {
		return 0, &model.InputError{Reason: "must provide question_index or question_text"}
	}

	var idx float64
	switch v := sel.Index.(type) {
	case float64:
		idx = v
	case int:
		idx = float64(v)
	default:
		return 0, &model.InputError{Field: "question_index", Reason: "must be an integer"}
	}
	if idx != math.Trunc(idx) {
		return 0, &model.InputError{Field: "question_index", Reason: "must be an integer"}
	}
	if idx < 0 || idx >= float64(len(s.entries)) {
		return 0, &model.InputError{Field: "question_index", Reason: "invalid question index"}
	}
	return int(idx), nil
}
