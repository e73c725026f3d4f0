package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upper(failOn ...string) Func {
	return func(_ context.Context, text, lang string) (string, error) {
		for _, f := range failOn {
			if f == text {
				return "", fmt.Errorf("%w: quota exceeded", ErrTranslation)
			}
		}
		return "[" + lang + "] " + text, nil
	}
}

func TestService_DefaultLanguageIsPassthrough(t *testing.T) {
	called := false
	tr := Func(func(context.Context, string, string) (string, error) {
		called = true
		return "", nil
	})
	s := NewService(tr, "", zerolog.Nop())

	for _, lang := range []string{"en", "EN", " en ", ""} {
		f := s.Field(context.Background(), "hello", lang)
		assert.Equal(t, Field{Text: "hello"}, f)
	}
	assert.False(t, called)
}

func TestService_Field(t *testing.T) {
	s := NewService(upper(), "en", zerolog.Nop())
	f := s.Field(context.Background(), "hello", "HI")
	assert.Equal(t, "[hi] hello", f.Text)
	assert.True(t, f.Translated)
	assert.NoError(t, f.Err)
}

func TestService_Fields_FailIndependently(t *testing.T) {
	s := NewService(upper("second"), "en", zerolog.Nop())
	fields := s.Fields(context.Background(), "ta", "first", "second", "third")

	require.Len(t, fields, 3)
	assert.Equal(t, "[ta] first", fields[0].Text)
	assert.True(t, fields[0].Translated)

	assert.Equal(t, "second", fields[1].Text)
	assert.False(t, fields[1].Translated)
	assert.ErrorIs(t, fields[1].Err, ErrTranslation)

	assert.Equal(t, "[ta] third", fields[2].Text)
	assert.Equal(t, []string{"[ta] first", "second", "[ta] third"}, Texts(fields))
}

func TestService_Unconfigured(t *testing.T) {
	s := NewService(Unconfigured{}, "en", zerolog.Nop())
	f := s.Field(context.Background(), "hello", "hi")
	assert.Equal(t, "hello", f.Text)
	assert.ErrorIs(t, f.Err, ErrTranslation)
}

func TestGoogleTranslator_Translate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/projects/demo/locations/global:translateText", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req translateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"What is a mutual fund?"}, req.Contents)
		assert.Equal(t, "hi", req.TargetLanguageCode)
		assert.Equal(t, "text/plain", req.MimeType)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"translations":[{"translatedText":"म्यूचुअल फंड क्या है?"}]}`)
	}))
	defer srv.Close()

	g := NewGoogleTranslator(srv.URL, "demo", "tok", zerolog.Nop())
	out, err := g.Translate(context.Background(), "What is a mutual fund?", "hi")
	require.NoError(t, err)
	assert.Equal(t, "म्यूचुअल फंड क्या है?", out)
}

func TestGoogleTranslator_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	g := NewGoogleTranslator(srv.URL, "demo", "", zerolog.Nop())
	_, err := g.Translate(context.Background(), "x", "hi")
	assert.ErrorIs(t, err, ErrTranslation)
	assert.Contains(t, err.Error(), "403")

	noProject := NewGoogleTranslator(srv.URL, "", "", zerolog.Nop())
	_, err = noProject.Translate(context.Background(), "x", "hi")
	assert.True(t, errors.Is(err, ErrTranslation))
}

func TestResolveLanguage(t *testing.T) {
	tests := map[string]string{
		"1":   "en",
		"2":   "hi",
		"12":  "or",
		"13":  "en",
		"0":   "en",
		"ta":  "ta",
		" TE": "te",
		"xx":  "en",
		"":    "en",
	}
	for in, want := range tests {
		assert.Equal(t, want, ResolveLanguage(in), "choice %q", in)
	}
}
