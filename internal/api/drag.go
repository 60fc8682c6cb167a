package api

import (
	"net/http"

	"github.com/meur/tierboard/internal/drag"
	"github.com/meur/tierboard/internal/models"
)

func (s *Server) dragStatus() models.DragStatus {
	phase, active, source := s.drag.Status()
	return models.DragStatus{Phase: phase.String(), ActiveID: active, Source: source}
}

func (s *Server) respondDrag(w http.ResponseWriter) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"drag":  s.dragStatus(),
		"state": s.board.State(),
	})
}

// handleDragStatus returns the live gesture
func (s *Server) handleDragStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.dragStatus())
}

// handleDragStart begins a gesture on an item
func (s *Server) handleDragStart(w http.ResponseWriter, r *http.Request) {
	var req models.DragStart
	if err := decodeJSON(w, r, &req); err != nil || req.ActiveID == "" {
		respondError(w, http.StatusBadRequest, "active_id is required")
		return
	}

	s.drag.Handle(drag.Start{ActiveID: req.ActiveID})
	s.respondDrag(w)
}

// handleDragHover applies a hover update, by key or by pointer position
func (s *Server) handleDragHover(w http.ResponseWriter, r *http.Request) {
	var req models.DragHover
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch {
	case req.OverID != "":
		s.drag.Handle(drag.Hover{OverID: req.OverID})
	case req.Pointer != nil:
		s.drag.HoverAt(*req.Pointer, req.Droppables)
	default:
		respondError(w, http.StatusBadRequest, "over_id or pointer is required")
		return
	}
	s.respondDrag(w)
}

// handleDragEnd finishes the gesture with a drop
func (s *Server) handleDragEnd(w http.ResponseWriter, r *http.Request) {
	s.drag.Handle(drag.End{})
	s.respondDrag(w)
}

// handleDragCancel aborts the gesture
func (s *Server) handleDragCancel(w http.ResponseWriter, r *http.Request) {
	s.drag.Handle(drag.Cancel{})
	s.respondDrag(w)
}
