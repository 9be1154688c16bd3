package handler

import (
	"log/slog"
	"net/http"

	"ripple/internal/domain/services"
	"ripple/internal/httputil"
)

// PostsHandler handles post and reaction HTTP requests
type PostsHandler struct {
	service services.PostService
	logger  *slog.Logger
}

// NewPostsHandler creates a new posts handler
func NewPostsHandler(service services.PostService, logger *slog.Logger) *PostsHandler {
	return &PostsHandler{
		service: service,
		logger:  logger,
	}
}

// HealthCheck responds 200 when the server is up
// GET /health
func (h *PostsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreatePost creates a post, repost, or reply
// POST /api/posts
func (h *PostsHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req services.CreatePostRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.service.CreatePost(r.Context(), userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, post)
}

// React attaches or replaces the caller's reaction on a post
// PUT /api/posts/{id}/reactions
func (h *PostsHandler) React(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	postID := r.PathValue("id")
	if postID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "post ID is required")
		return
	}

	var req services.CreateReactionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reaction, err := h.service.React(r.Context(), userID, postID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, reaction)
}

// Unreact removes the caller's reaction from a post
// DELETE /api/posts/{id}/reactions
func (h *PostsHandler) Unreact(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	postID := r.PathValue("id")
	if postID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "post ID is required")
		return
	}

	reaction, err := h.service.Unreact(r.Context(), userID, postID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, reaction)
}
