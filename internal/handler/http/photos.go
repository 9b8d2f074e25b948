package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"recipekeep/internal/logger"
	"recipekeep/internal/utils"
	"recipekeep/models"
)

func (h *Handler) listPhotos(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := recipeIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listPhotos").Msg("invalid recipe id")
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return
	}

	photos, err := h.services.PhotoService.ListPhotos(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listPhotos").Int64("recipe_id", id).Msg("error getting photos")
		http.Error(w, "error getting photos", statusFromError(err))
		return
	}

	if photos == nil {
		photos = []string{}
	}
	utils.WriteJSON(w, models.PhotosResponse{Photos: photos}, http.StatusOK)
}

// uploadPhoto commits the 200 status before the storage-and-persist work
// completes, then streams a terminal JSON object into the still-open body.
// Clients treat the body, not the status line, as the authoritative result.
// The multipart body is fully consumed before the status goes out: net/http
// discards the unread request body once response headers hit the wire, so
// reading after the commit would always fail on a real connection. A
// detached context keeps the storage writes going if the uploader
// disconnects early.
func (h *Handler) uploadPhoto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := recipeIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadPhoto").Msg("invalid recipe id")
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return
	}

	part, readErr := readPhotoPart(r)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	var result models.PhotoUploadResult
	if readErr != nil {
		result = models.PhotoUploadResult{Message: "Error uploading photo", Error: readErr.Error()}
	} else {
		result = h.runPhotoUpload(context.WithoutCancel(r.Context()), id, part)
	}
	if result.Error != "" {
		log.Error().Str("func", "*Handler.uploadPhoto").Int64("recipe_id", id).Str("error", result.Error).Msg("photo upload failed")
	}

	if err = json.NewEncoder(w).Encode(result); err != nil {
		log.Err(err).Str("func", "*Handler.uploadPhoto").Msg("error writing streamed upload result")
	}
}

// photoPart is one multipart file field pulled into memory.
type photoPart struct {
	filename    string
	contentType string
	data        []byte
}

func readPhotoPart(r *http.Request) (photoPart, error) {
	file, header, err := r.FormFile("photo")
	if err != nil {
		return photoPart{}, errors.New("photo file is required")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return photoPart{}, err
	}

	return photoPart{
		filename:    header.Filename,
		contentType: header.Header.Get("Content-Type"),
		data:        data,
	}, nil
}

func (h *Handler) runPhotoUpload(ctx context.Context, recipeID int64, part photoPart) models.PhotoUploadResult {
	path, err := h.services.PhotoService.UploadPhoto(ctx, recipeID, part.filename, part.data, part.contentType)
	if err != nil {
		return models.PhotoUploadResult{Message: "Error uploading photo", Error: err.Error()}
	}

	return models.PhotoUploadResult{Message: "Photo uploaded successfully", PhotoPath: path}
}

func (h *Handler) getPhoto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := recipeIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPhoto").Msg("invalid recipe id")
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return
	}
	filename := chi.URLParam(r, "filename")

	data, contentType, err := h.services.PhotoService.GetPhoto(r.Context(), id, filename)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPhoto").Int64("recipe_id", id).Str("filename", filename).Msg("error getting photo")
		http.Error(w, "error getting photo", statusFromError(err))
		return
	}

	// photo files never change under one name, long-lived cache is safe
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) deletePhoto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := recipeIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deletePhoto").Msg("invalid recipe id")
		http.Error(w, "invalid recipe id", http.StatusBadRequest)
		return
	}
	filename := chi.URLParam(r, "filename")

	if err = h.services.PhotoService.DeletePhoto(r.Context(), id, filename); err != nil {
		log.Err(err).Str("func", "*Handler.deletePhoto").Int64("recipe_id", id).Str("filename", filename).Msg("error deleting photo")
		http.Error(w, "error deleting photo", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Photo deleted successfully"}, http.StatusOK)
}
