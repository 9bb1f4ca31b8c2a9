package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/phoneme-service/internal/domain"
	"github.com/heartmarshall/phoneme-service/internal/service/phoneme"
	"github.com/heartmarshall/phoneme-service/pkg/ctxutil"
)

const maxBodyBytes = 64 << 10

// phonemeService defines the minimal interface needed by PhonemeHandler.
type phonemeService interface {
	Convert(ctx context.Context, input phoneme.ConvertInput) (*phoneme.ConvertResult, error)
	Pronunciations(ctx context.Context, word string) (*phoneme.PronunciationsResult, error)
}

// PhonemeHandler serves word-to-phoneme endpoints.
type PhonemeHandler struct {
	svc phonemeService
	log *slog.Logger
}

// NewPhonemeHandler creates a PhonemeHandler.
func NewPhonemeHandler(svc phonemeService, logger *slog.Logger) *PhonemeHandler {
	return &PhonemeHandler{svc: svc, log: logger.With("handler", "phoneme")}
}

type convertRequest struct {
	Word string `json:"word"`
}

// ConvertResponse is the invocation reply for POST /v1/phonemes.
type ConvertResponse struct {
	ReqID    string `json:"req_id"`
	Phonemes string `json:"phonemes"`
	Message  string `json:"message"`
}

// PronunciationsResponse lists every variant of a word.
type PronunciationsResponse struct {
	Word     string            `json:"word"`
	Variants []variantResponse `json:"variants"`
}

type variantResponse struct {
	Index    int    `json:"index"`
	Phonemes string `json:"phonemes"`
	IPA      string `json:"ipa"`
}

// Convert handles POST /v1/phonemes.
func (h *PhonemeHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Convert(r.Context(), phoneme.ConvertInput{Word: req.Word})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{
		ReqID:    ctxutil.RequestIDFromCtx(r.Context()),
		Phonemes: result.Phonemes,
		Message:  result.Message,
	})
}

// Pronunciations handles GET /v1/words/{word}/pronunciations.
func (h *PhonemeHandler) Pronunciations(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Pronunciations(r.Context(), r.PathValue("word"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := PronunciationsResponse{
		Word:     result.Word,
		Variants: make([]variantResponse, len(result.Variants)),
	}
	for i, v := range result.Variants {
		resp.Variants[i] = variantResponse{Index: v.Index, Phonemes: v.Phonemes, IPA: v.IPA}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PhonemeHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "unknown word")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
