package handler

import (
	"log/slog"
	"net/http"

	"inkwell/internal/domain/models"
	"inkwell/internal/httputil"
	"inkwell/internal/service"
)

// SuggestionHandler handles suggestion HTTP requests
type SuggestionHandler struct {
	suggestionService service.SuggestionService
	logger            *slog.Logger
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(suggestionService service.SuggestionService, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionService: suggestionService,
		logger:            logger,
	}
}

// ListSuggestions returns the suggestions for a document
// GET /api/documents/{id}/suggestions
func (h *SuggestionHandler) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	suggestions, err := h.suggestionService.List(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	if suggestions == nil {
		suggestions = []models.Suggestion{}
	}
	httputil.RespondJSON(w, http.StatusOK, suggestions)
}

// RegenerateSuggestions replaces a document's suggestion batch
// POST /api/documents/{id}/generate-suggestions
func (h *SuggestionHandler) RegenerateSuggestions(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	suggestions, err := h.suggestionService.Regenerate(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	if suggestions == nil {
		suggestions = []models.Suggestion{}
	}
	httputil.RespondJSON(w, http.StatusOK, suggestions)
}

// GenerateContent runs a suggestion's prompt and stores the result
// POST /api/suggestions/{id}/generate
func (h *SuggestionHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	suggestion, err := h.suggestionService.GenerateContent(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, suggestion)
}

type applyRequest struct {
	Mode string `json:"mode"`
}

// ApplySuggestion merges a suggestion's generated content into its document
// POST /api/suggestions/{id}/apply
func (h *SuggestionHandler) ApplySuggestion(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req applyRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc, err := h.suggestionService.Apply(r.Context(), id, service.ApplyMode(req.Mode))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}
