package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"InvestAdvisor/internal/advisor"
	"InvestAdvisor/internal/faq"
	"InvestAdvisor/internal/model"
	"InvestAdvisor/internal/translate"
)

// maxBodyBytes bounds request bodies; every payload here is a handful of fields.
const maxBodyBytes = 64 << 10

// Handler serves the recommendation and FAQ endpoints.
type Handler struct {
	advisor *advisor.Service
	faq     *faq.Store
	log     zerolog.Logger
}

// NewHandler creates a new handler
func NewHandler(svc *advisor.Service, store *faq.Store, log zerolog.Logger) *Handler {
	return &Handler{
		advisor: svc,
		faq:     store,
		log:     log.With().Str("component", "handlers").Logger(),
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type faqQuestionsRequest struct {
	PreferredLanguage string `json:"preferred_language"`
}

type faqAnswerRequest struct {
	PreferredLanguage string `json:"preferred_language"`
	QuestionIndex     any    `json:"question_index"`
	QuestionText      string `json:"question_text"`
}

// HandleRecommendation handles POST /recommendation
func (h *Handler) HandleRecommendation(w http.ResponseWriter, r *http.Request) {
	var req advisor.RawRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.advisor.Recommend(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// HandleFAQQuestions handles POST /faq/questions
func (h *Handler) HandleFAQQuestions(w http.ResponseWriter, r *http.Request) {
	var req faqQuestionsRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.writeJSON(w, http.StatusOK, map[string][]string{
		"questions": h.faq.Questions(r.Context(), req.PreferredLanguage),
	})
}

// HandleFAQAnswer handles POST /faq/answer
func (h *Handler) HandleFAQAnswer(w http.ResponseWriter, r *http.Request) {
	var req faqAnswerRequest
	if !h.decode(w, r, &req) {
		return
	}

	answer, err := h.faq.Answer(r.Context(), req.PreferredLanguage, faq.Selector{
		Text:  req.QuestionText,
		Index: req.QuestionIndex,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

// HandleLanguages handles GET /languages
func (h *Handler) HandleLanguages(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, translate.Languages)
}

// HandleHealth handles GET /health
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads a JSON body into dst. An empty body leaves dst at its zero value.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Details: err.Error()})
	return false
}

// writeServiceError maps advisor and FAQ errors to HTTP status codes.
// Nothing is written once the request context is done: the Timeout
// middleware owns the 504 and a cancelled client is gone.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if ctxErr := r.Context().Err(); ctxErr != nil {
		h.log.Warn().Err(err).Str("reason", ctxErr.Error()).Msg("Request ended before the response was ready")
		return
	}
	var ie *model.InputError
	switch {
	case errors.As(err, &ie):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid input", Details: ie.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		h.writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: "upstream service timed out", Details: err.Error()})
	case errors.Is(err, model.ErrCollaborator):
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: "upstream service unavailable", Details: err.Error()})
	default:
		h.log.Error().Err(err).Msg("Unhandled service error")
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}
