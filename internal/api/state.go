package api

import (
	"io"
	"net/http"

	"github.com/meur/tierboard/internal/tierlist"
)

// handleGetState returns the current tier list
func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.board.State())
}

// handleLoadState replaces the tier list with a snapshot
func (s *Server) handleLoadState(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	snapshot, err := tierlist.ParseSnapshot(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, s.board.Dispatch(tierlist.LoadState{State: snapshot}))
}

// handleResetState restores the default seed
func (s *Server) handleResetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.board.Reset())
}
