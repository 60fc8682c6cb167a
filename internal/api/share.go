package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meur/tierboard/internal/models"
	"github.com/meur/tierboard/internal/share"
)

// handleShare publishes the current tier list
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	res, err := s.publisher.Publish(r.Context(), s.board.State())
	if errors.Is(err, share.ErrInProgress) {
		respondError(w, http.StatusConflict, "Share already in progress")
		return
	}
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to share tier list")
		return
	}

	respondJSON(w, http.StatusCreated, models.ShareCreated{ID: res.ID, URL: res.URL})
}

// handleGetShare returns a share record by ID
func (s *Server) handleGetShare(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := s.store.GetShareRecord(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch share")
		return
	}
	if rec == nil {
		respondError(w, http.StatusNotFound, "Share not found")
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

// handleGetImage serves an uploaded share image
func (s *Server) handleGetImage(w http.ResponseWriter, r *http.Request) {
	data, mime, err := s.store.GetImage(r.Context(), chi.URLParam(r, "session"), chi.URLParam(r, "item"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch image")
		return
	}
	if data == nil {
		respondError(w, http.StatusNotFound, "Image not found")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
