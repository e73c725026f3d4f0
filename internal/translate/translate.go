// Package translate wraps the translation collaborator. Every string is
// translated on its own and falls back to the source text on failure.
package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLanguage is the language the canned texts are written in.
const DefaultLanguage = "en"

// ErrTranslation marks a failed translation call.
var ErrTranslation = errors.New("translation failed")

// Translator translates a single string into the target language.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Field is the outcome of translating one string.
type Field struct {
	Text       string
	Translated bool
	Err        error // set when the text fell back to the source language
}

// Service applies the default-language passthrough and the per-field fallback.
type Service struct {
	tr          Translator
	defaultLang string
	log         zerolog.Logger
}

// NewService creates a Service. An empty defaultLang selects DefaultLanguage.
func NewService(tr Translator, defaultLang string, log zerolog.Logger) *Service {
	if defaultLang == "" {
		defaultLang = DefaultLanguage
	}
	return &Service{
		tr:          tr,
		defaultLang: strings.ToLower(defaultLang),
		log:         log.With().Str("component", "translate").Logger(),
	}
}

// DefaultLanguage returns the language texts are served in without translation.
func (s *Service) DefaultLanguage() string { return s.defaultLang }

// Normalize lowercases lang and substitutes the default when it is empty.
func (s *Service) Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return s.defaultLang
	}
	return lang
}

// Field translates text into lang, returning the source text if the call fails.
func (s *Service) Field(ctx context.Context, text, lang string) Field {
	lang = s.Normalize(lang)
	if lang == s.defaultLang || text == "" {
		return Field{Text: text}
	}
	out, err := s.tr.Translate(ctx, text, lang)
	if err != nil {
		s.log.Warn().Err(err).Str("lang", lang).Msg("Translation failed, using source text")
		return Field{Text: text, Err: err}
	}
	return Field{Text: out, Translated: true}
}

// Fields translates each text independently.
func (s *Service) Fields(ctx context.Context, lang string, texts ...string) []Field {
	out := make([]Field, len(texts))
	for i, t := range texts {
		out[i] = s.Field(ctx, t, lang)
	}
	return out
}

// Texts returns the text of each field.
func Texts(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Text
	}
	return out
}

// Unconfigured is the Translator used when no translation backend is set up.
type Unconfigured struct{}

func (Unconfigured) Translate(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("%w: no translation backend configured", ErrTranslation)
}

// Func adapts a plain function to the Translator interface.
type Func func(ctx context.Context, text, targetLang string) (string, error)

func (f Func) Translate(ctx context.Context, text, targetLang string) (string, error) {
	return f(ctx, text, targetLang)
}
