package handler

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"ripple/internal/domain/services"
	"ripple/internal/httputil"
)

// ProfileHandler handles profile and profile-photo HTTP requests
type ProfileHandler struct {
	service services.ProfileService
	logger  *slog.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service services.ProfileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger,
	}
}

// GetProfile retrieves the caller's profile
// GET /api/users/me/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	profile, err := h.service.Get(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, profile)
}

// SetProfile creates or fully replaces the caller's profile
// PUT /api/users/me/profile
func (h *ProfileHandler) SetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req services.SetProfileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.service.Set(r.Context(), userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, profile)
}

// UploadPhoto stores the caller's profile photo
// PUT /api/users/me/profile/photo
func (h *ProfileHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	// Parse multipart form (max 10MB for a single jpeg)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close()

	upload := &services.UploadedPhoto{
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}

	if err := h.service.SetPhoto(r.Context(), userID, upload); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetPhoto streams the caller's profile photo using the descriptor the
// service hands back
// GET /api/users/me/profile/photo
func (h *ProfileHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	desc, err := h.service.GetPhoto(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	for name, value := range desc.Options.Headers {
		w.Header().Set(name, value)
	}
	http.ServeFile(w, r, filepath.Join(desc.Options.Root, desc.PhotoName))
}

// DeletePhoto removes the caller's profile photo
// DELETE /api/users/me/profile/photo
func (h *ProfileHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeletePhoto(r.Context(), userID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
