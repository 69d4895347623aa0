package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/store"
)

// Posts groups the published-post handlers. Reads are public; mutations
// are scoped to the authenticated owner, with ownership mismatches
// collapsed into 404 so the existence of other users' posts never leaks.
type Posts struct {
	posts      *store.PostStore
	categories *store.CategoryStore
	drafts     *store.DraftStore

	// deleteDraftOnPublish removes the source draft row after a
	// successful publish when the request names one.
	deleteDraftOnPublish bool
}

// NewPosts creates a new Posts handler group.
func NewPosts(posts *store.PostStore, categories *store.CategoryStore, drafts *store.DraftStore, deleteDraftOnPublish bool) *Posts {
	return &Posts{
		posts:                posts,
		categories:           categories,
		drafts:               drafts,
		deleteDraftOnPublish: deleteDraftOnPublish,
	}
}

// postRequest is the body for POST /complete_posts and PUT /posts/{id}.
// DraftID optionally names the source draft being published.
type postRequest struct {
	Title      string     `json:"title"`
	Tags       *string    `json:"tags"`
	Content    string     `json:"content"`
	CategoryID *uuid.UUID `json:"category_id"`
	DraftID    *uuid.UUID `json:"draft_id,omitempty"`
}

// Create publishes a new post. The category must resolve at publish
// time; the check and the insert are separate round-trips, so a category
// deleted in between leaves a dangling reference the readers tolerate.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromCtx(r.Context())
	if identity == nil {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req postRequest
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
	if req.CategoryID == nil {
		writeMessage(w, http.StatusBadRequest, "category is required")
		return
	}

	category, err := h.categories.FindByID(*req.CategoryID)
	if err != nil {
		serverError(w, "category lookup failed", err)
		return
	}
	if category == nil {
		writeMessage(w, http.StatusBadRequest, "invalid category")
		return
	}

	post, err := h.posts.Create(identity.UserID, title, tags, content, category.ID)
	if err != nil {
		serverError(w, "create post failed", err)
		return
	}
	post.CategoryName = category.Name

	// Draft cleanup is policy-driven and best-effort: the post is already
	// published, so a failed cleanup only leaves the draft behind.
	if h.deleteDraftOnPublish && req.DraftID != nil {
		if _, err := h.drafts.Delete(*req.DraftID, identity.UserID); err != nil {
			slog.Error("delete source draft failed",
				"draft_id", *req.DraftID,
				"user_id", identity.UserID,
				"error", err,
			)
		}
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "post published",
		"post":    post,
	})
}

// List returns all posts with category names resolved, newest first. Public.
func (h *Posts) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.posts.List()
	if err != nil {
		serverError(w, "list posts failed", err)
		return
	}

	names, err := h.categories.NamesByID()
	if err != nil {
		serverError(w, "resolve category names failed", err)
		return
	}
	for i := range items {
		items[i].CategoryName = names[items[i].CategoryID]
	}
	if items == nil {
		items = []models.Post{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"posts": items})
}

// Get returns a single post with its category name resolved. Public.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "post not found")
		return
	}

	post, err := h.posts.FindByID(id)
	if err != nil {
		serverError(w, "get post failed", err)
		return
	}
	if post == nil {
		writeMessage(w, http.StatusNotFound, "post not found")
		return
	}

	category, err := h.categories.FindByID(post.CategoryID)
	if err != nil {
		serverError(w, "category lookup failed", err)
		return
	}
	if category != nil {
		post.CategoryName = category.Name
	}

	writeJSON(w, http.StatusOK, map[string]any{"post": post})
}

// Update overwrites a post's editable fields. Only the owner succeeds;
// everyone else sees 404.
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromCtx(r.Context())
	if identity == nil {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "post not found")
		return
	}

	var req postRequest
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
	if req.CategoryID == nil {
		writeMessage(w, http.StatusBadRequest, "category is required")
		return
	}

	category, err := h.categories.FindByID(*req.CategoryID)
	if err != nil {
		serverError(w, "category lookup failed", err)
		return
	}
	if category == nil {
		writeMessage(w, http.StatusBadRequest, "invalid category")
		return
	}

	updated, err := h.posts.Update(id, identity.UserID, title, tags, content, category.ID)
	if err != nil {
		serverError(w, "update post failed", err)
		return
	}
	if !updated {
		writeMessage(w, http.StatusNotFound, "post not found or no permission")
		return
	}

	writeMessage(w, http.StatusOK, "post updated")
}

// Delete removes a post. Only the owner succeeds; everyone else sees 404.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromCtx(r.Context())
	if identity == nil {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "post not found")
		return
	}

	deleted, err := h.posts.Delete(id, identity.UserID)
	if err != nil {
		serverError(w, "delete post failed", err)
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "post not found or no permission")
		return
	}

	writeMessage(w, http.StatusOK, "post deleted")
}
