package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// mountEditor serves the editor's static files at / and its index page at
// /share/{id}, where the editor loads the shared record by id.
func (s *Server) mountEditor() {
	dir := s.cfg.StaticDir
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		s.logger.Warn("static directory not found, editor not served", "dir", dir)
		return
	}

	index := filepath.Join(dir, "index.html")
	s.router.Get("/share/{id}", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, index)
	})
	FileServer(s.router, "/", http.Dir(dir))
}

// FileServer conveniently sets up a http.FileServer handler to serve
// static files from a http.FileSystem.
func FileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer does not permit URL parameters.")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, req *http.Request) {
		rctx := chi.RouteContext(req.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, req)
	})
}
