package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/store"
)

// Drafts groups the temporary-post handlers. Every operation is scoped
// to the authenticated caller; ids supplied by the client never widen
// that scope.
type Drafts struct {
	drafts *store.DraftStore
}

// NewDrafts creates a new Drafts handler group.
func NewDrafts(drafts *store.DraftStore) *Drafts {
	return &Drafts{drafts: drafts}
}

// draftRequest is the POST /temporary_posts body.
type draftRequest struct {
	Title   string  `json:"title"`
	Tags    *string `json:"tags"`
	Content string  `json:"content"`
}

// Create saves a new draft owned by the caller.
func (h *Drafts) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromCtx(r.Context())
	if identity == nil {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req draftRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	title := strings.TrimSpace(req.Title)
	tags := normalizeTags(req.Tags)
	content := strings.TrimSpace(req.Content)
	if msg := validateWriting(title, tags, content); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	draft, err := h.drafts.Create(identity.UserID, title, tags, content)
	if err != nil {
		serverError(w, "create draft failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":        "draft saved",
		"temporary_post": draft,
	})
}

// List returns summaries of the caller's drafts, newest-updated first.
func (h *Drafts) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromCtx(r.Context())
	if identity == nil {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	items, err := h.drafts.ListByUser(identity.UserID)
	if err != nil {
		serverError(w, "list drafts failed", err)
		return
	}
	if items == nil {
		items = []models.DraftSummary{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"temporary_posts": items})
}

// Get returns one of the caller's drafts with its full content.
// A draft owned by someone else is indistinguishable from a missing one.
func (h *Drafts) Get(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromCtx(r.Context())
	if identity == nil {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "draft not found")
		return
	}

	draft, err := h.drafts.FindByID(id, identity.UserID)
	if err != nil {
		serverError(w, "get draft failed", err)
		return
	}
	if draft == nil {
		writeMessage(w, http.StatusNotFound, "draft not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"temporary_post": draft})
}

// Delete removes one of the caller's drafts.
func (h *Drafts) Delete(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromCtx(r.Context())
	if identity == nil {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "draft not found")
		return
	}

	deleted, err := h.drafts.Delete(id, identity.UserID)
	if err != nil {
		serverError(w, "delete draft failed", err)
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "draft not found")
		return
	}

	writeMessage(w, http.StatusOK, "draft deleted")
}
