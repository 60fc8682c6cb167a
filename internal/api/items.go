package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/meur/tierboard/internal/imaging"
	"github.com/meur/tierboard/internal/models"
	"github.com/meur/tierboard/internal/tierlist"
)

// handleAddItem adds an item to the unranked pool
func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req models.ItemCreate
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Content) == "" && strings.TrimSpace(req.Image) == "" {
		respondError(w, http.StatusBadRequest, "content or image is required")
		return
	}

	respondJSON(w, http.StatusCreated, s.board.Dispatch(tierlist.AddItem{Content: req.Content, Image: req.Image}))
}

// handleDeleteItem deletes an item everywhere
func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, ok := s.board.State().Items[id]; !ok {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}

	respondJSON(w, http.StatusOK, s.board.Dispatch(tierlist.DeleteItem{ItemID: id}))
}

// handleMoveItem moves an item to the end of another container
func (s *Server) handleMoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.ItemMove
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	state := s.board.State()
	current, ok := tierlist.ContainerOf(state, id)
	if !ok {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}
	if req.From == "" {
		req.From = current
	}
	if !tierlist.HasContainer(state, req.To) {
		respondError(w, http.StatusBadRequest, "Unknown target container")
		return
	}

	respondJSON(w, http.StatusOK, s.board.Dispatch(tierlist.MoveItem{ItemID: id, From: req.From, To: req.To}))
}

// handleReorderItem moves an item to a sibling's slot
func (s *Server) handleReorderItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.ItemReorder
	if err := decodeJSON(w, r, &req); err != nil || req.OverID == "" {
		respondError(w, http.StatusBadRequest, "over_id is required")
		return
	}

	if _, ok := s.board.State().Items[id]; !ok {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}

	respondJSON(w, http.StatusOK, s.board.Dispatch(tierlist.ReorderItem{ItemID: id, OverID: req.OverID}))
}

// handleIngestImage crops and downsamples an uploaded picture
func (s *Server) handleIngestImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadBytes+1<<20)
	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	thumb, err := imaging.Ingest(file, imaging.Size)
	if errors.Is(err, imaging.ErrTooLarge) {
		respondError(w, http.StatusRequestEntityTooLarge, "Image too large")
		return
	}
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "Unsupported image")
		return
	}

	s.logger.Debug("image ingested",
		"name", header.Filename,
		"input", humanize.Bytes(uint64(header.Size)),
		"output", humanize.Bytes(uint64(thumb.Bytes)),
	)

	respondJSON(w, http.StatusOK, models.ImageIngested{
		Image:  thumb.DataURL,
		Width:  thumb.Width,
		Height: thumb.Height,
		Bytes:  thumb.Bytes,
	})
}
