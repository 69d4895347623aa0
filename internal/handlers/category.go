package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"inkwell/internal/models"
	"inkwell/internal/store"
)

// Categories groups the category handlers.
type Categories struct {
	categories *store.CategoryStore
}

// NewCategories creates a new Categories handler group.
func NewCategories(categories *store.CategoryStore) *Categories {
	return &Categories{categories: categories}
}

// List returns all categories, newest first. Public.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.categories.List()
	if err != nil {
		serverError(w, "list categories failed", err)
		return
	}
	if items == nil {
		items = []models.Category{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": items})
}

// createCategoryRequest is the POST /categories body.
type createCategoryRequest struct {
	Name string `json:"name"`
}

// Create adds a new category. Duplicate names map to 409.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if msg := validateCategoryName(name); msg != "" {
		writeMessage(w, http.StatusBadRequest, msg)
		return
	}

	category, err := h.categories.Create(name)
	if err != nil {
		if store.IsUniqueViolation(err) {
			writeMessage(w, http.StatusConflict, "category already exists")
			return
		}
		serverError(w, "create category failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "category created",
		"category": category,
	})
}

// Delete removes a category by id. Dependent posts are not touched;
// they keep their category_id even if it no longer resolves.
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "category not found")
		return
	}

	deleted, err := h.categories.Delete(id)
	if err != nil {
		serverError(w, "delete category failed", err)
		return
	}
	if !deleted {
		writeMessage(w, http.StatusNotFound, "category not found")
		return
	}

	writeMessage(w, http.StatusOK, "category deleted")
}
