package handler

import (
	"log/slog"
	"net/http"

	"inkwell/internal/domain/models"
	"inkwell/internal/domain/repositories"
	"inkwell/internal/httputil"
	"inkwell/internal/service"
)

// DocumentHandler handles document HTTP requests
type DocumentHandler struct {
	docService service.DocumentService
	logger     *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(docService service.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		logger:     logger,
	}
}

type createDocumentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type updateDocumentRequest struct {
	Title   httputil.OptionalString `json:"title"`
	Content httputil.OptionalString `json:"content"`
}

// CreateDocument creates a new document owned by the session user
// POST /api/documents
func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req createDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	newDoc := &repositories.NewDocument{
		Title:   req.Title,
		Content: req.Content,
	}
	if userID := httputil.GetUserID(r); userID != 0 {
		newDoc.UserID = &userID
	}

	doc, err := h.docService.Create(r.Context(), newDoc)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, doc)
}

// GetDocument retrieves a document by ID
// GET /api/documents/{id}
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.docService.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// ListDocuments returns all documents
// GET /api/documents
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.docService.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	if docs == nil {
		docs = []models.Document{}
	}
	httputil.RespondJSON(w, http.StatusOK, docs)
}

// UpdateDocument applies a partial update; absent fields keep their values
// PATCH /api/documents/{id}
func (h *DocumentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req updateDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := &repositories.DocumentUpdate{}
	if req.Title.Present {
		update.Title = optionalOrEmpty(req.Title)
	}
	if req.Content.Present {
		update.Content = optionalOrEmpty(req.Content)
	}

	doc, err := h.docService.Update(r.Context(), id, update)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// optionalOrEmpty maps a present field to its value, treating JSON null
// as clearing the field.
func optionalOrEmpty(o httputil.OptionalString) *string {
	if o.Value != nil {
		return o.Value
	}
	empty := ""
	return &empty
}
