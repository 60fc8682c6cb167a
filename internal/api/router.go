package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/meur/tierboard/internal/config"
	"github.com/meur/tierboard/internal/drag"
	"github.com/meur/tierboard/internal/share"
	"github.com/meur/tierboard/internal/storage"
	"github.com/meur/tierboard/internal/tierlist"
)

// maxBodyBytes bounds JSON request bodies; snapshots may carry inline images
const maxBodyBytes = 32 << 20

// Server holds the HTTP server dependencies
type Server struct {
	store     *storage.Store
	board     *tierlist.Board
	drag      *drag.Coordinator
	publisher *share.Publisher
	cfg       config.Config
	logger    *slog.Logger
	router    chi.Router
}

// New creates a new API server editing the board persisted in store
func New(store *storage.Store, cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	board := tierlist.Open(store, logger)

	s := &Server{
		store:     store,
		board:     board,
		drag:      drag.NewCoordinator(board, logger),
		publisher: share.NewPublisher(storage.NewShareBackend(store, cfg.PublicOrigin), cfg.PublicOrigin, logger),
		cfg:       cfg,
		logger:    logger,
		router:    chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Flush writes any board change still held by an open drag gesture
func (s *Server) Flush() {
	s.board.Flush()
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		// State
		r.Get("/state", s.handleGetState)
		r.Put("/state", s.handleLoadState)
		r.Post("/state/reset", s.handleResetState)

		// Items
		r.Post("/items", s.handleAddItem)
		r.Delete("/items/{id}", s.handleDeleteItem)
		r.Post("/items/{id}/move", s.handleMoveItem)
		r.Post("/items/{id}/reorder", s.handleReorderItem)
		r.Post("/images", s.handleIngestImage)

		// Drag gesture
		r.Get("/drag", s.handleDragStatus)
		r.Post("/drag/start", s.handleDragStart)
		r.Post("/drag/hover", s.handleDragHover)
		r.Post("/drag/end", s.handleDragEnd)
		r.Post("/drag/cancel", s.handleDragCancel)

		// Share links
		r.Post("/share", s.handleShare)
		r.Get("/share/{id}", s.handleGetShare)
	})

	s.router.Get("/images/{session}/{item}", s.handleGetImage)

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	s.mountEditor()
}

// requestLogger logs each request with slog
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}
