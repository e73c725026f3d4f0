package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// DefaultGoogleBaseURL is the Cloud Translation API host.
const DefaultGoogleBaseURL = "https://translation.googleapis.com"

// GoogleTranslator calls the Cloud Translation v3 translateText method.
type GoogleTranslator struct {
	client    *resty.Client
	projectID string
	log       zerolog.Logger
}

// NewGoogleTranslator creates a translator for projectID. accessToken is an
// OAuth bearer token for the project's service account.
func NewGoogleTranslator(baseURL, projectID, accessToken string, log zerolog.Logger) *GoogleTranslator {
	if baseURL == "" {
		baseURL = DefaultGoogleBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(15 * time.Second)
	if accessToken != "" {
		client.SetAuthToken(accessToken)
	}
	return &GoogleTranslator{
		client:    client,
		projectID: projectID,
		log:       log.With().Str("client", "google-translate").Logger(),
	}
}

type translateRequest struct {
	Contents           []string `json:"contents"`
	MimeType           string   `json:"mimeType"`
	TargetLanguageCode string   `json:"targetLanguageCode"`
}

type translateResponse struct {
	Translations []struct {
		TranslatedText string `json:"translatedText"`
	} `json:"translations"`
}

func (g *GoogleTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if g.projectID == "" {
		return "", fmt.Errorf("%w: project id not configured", ErrTranslation)
	}
	path := fmt.Sprintf("/v3/projects/%s/locations/global:translateText", g.projectID)
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(translateRequest{
			Contents:           []string{text},
			MimeType:           "text/plain",
			TargetLanguageCode: targetLang,
		}).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslation, err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("%w: status %d, body: %s", ErrTranslation, resp.StatusCode(), resp.String())
	}

	var out translateResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrTranslation, err)
	}
	if len(out.Translations) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrTranslation)
	}
	g.log.Debug().Str("lang", targetLang).Msg("Translated text")
	return out.Translations[0].TranslatedText, nil
}
