package faq

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InvestAdvisor/internal/model"
	"InvestAdvisor/internal/translate"
)

func newStore(failOn ...string) *Store {
	tr := translate.Func(func(_ context.Context, text, lang string) (string, error) {
		for _, f := range failOn {
			if f == text {
				return "", fmt.Errorf("%w: rate limited", translate.ErrTranslation)
			}
		}
		return lang + ":" + text, nil
	})
	return NewStore(translate.NewService(tr, "en", zerolog.Nop()))
}

func TestQuestions_DefaultLanguageInOrder(t *testing.T) {
	s := newStore()
	qs := s.Questions(context.Background(), "en")

	require.Len(t, qs, 15)
	assert.Equal(t, "What is a mutual fund?", qs[0])
	assert.Equal(t, "Can I redeem my mutual fund units anytime?", qs[14])
}

func TestQuestions_PerQuestionFallback(t *testing.T) {
	s := newStore("How do mutual funds work?")
	qs := s.Questions(context.Background(), "hi")

	require.Len(t, qs, 15)
	assert.Equal(t, "hi:What is a mutual fund?", qs[0])
	assert.Equal(t, "How do mutual funds work?", qs[2])
	assert.Equal(t, "hi:What are the types of mutual funds?", qs[3])
}

func TestAnswer_ByIndex(t *testing.T) {
	s := newStore()
	ans, err := s.Answer(context.Background(), "en", Selector{Index: float64(6)})
	require.NoError(t, err)
	assert.Contains(t, ans, "SIP is a method")
}

func TestAnswer_ByText(t *testing.T) {
	s := newStore()
	ans, err := s.Answer(context.Background(), "ta", Selector{Text: "What does NAV (Net Asset Value) mean?"})
	require.NoError(t, err)
	assert.Equal(t, "ta:"+s.Entries()[9].Answer, ans)
}

func TestAnswer_TextTakesPrecedence(t *testing.T) {
	s := newStore()
	ans, err := s.Answer(context.Background(), "en", Selector{Text: "What is meant by investment?", Index: float64(0)})
	require.NoError(t, err)
	assert.Equal(t, s.Entries()[1].Answer, ans)
}

func TestAnswer_TranslationFallback(t *testing.T) {
	entry := model.FAQEntry{Question: "Q", Answer: "A"}
	tr := translate.Func(func(context.Context, string, string) (string, error) {
		return "", translate.ErrTranslation
	})
	s := NewStoreWith([]model.FAQEntry{entry}, translate.NewService(tr, "en", zerolog.Nop()))

	ans, err := s.Answer(context.Background(), "bn", Selector{Index: 0})
	require.NoError(t, err)
	assert.Equal(t, "A", ans)
}

func TestAnswer_InvalidSelectors(t *testing.T) {
	tests := []struct {
		name string
		sel  Selector
	}{
		{"nothing", Selector{}},
		{"blank text no index", Selector{Text: "  "}},
		{"unknown text", Selector{Text: "What is crypto?"}},
		{"negative index", Selector{Index: float64(-1)}},
		{"index too large", Selector{Index: float64(15)}},
		{"fractional index", Selector{Index: 1.5}},
		{"string index", Selector{Index: "2"}},
	}
	s := newStore()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Answer(context.Background(), "en", tt.sel)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestNewStoreWith_CopiesEntries(t *testing.T) {
	entries := []model.FAQEntry{{Question: "Q", Answer: "A"}}
	s := NewStoreWith(entries, translate.NewService(translate.Unconfigured{}, "en", zerolog.Nop()))
	entries[0].Answer = "changed"

	ans, err := s.Answer(context.Background(), "en", Selector{Text: "Q"})
	require.NoError(t, err)
	assert.Equal(t, "A", ans)
}
