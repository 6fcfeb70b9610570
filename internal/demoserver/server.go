// Package demoserver serves a small fixture feed with the same three
// endpoints as the real test API, so the tool can be tried offline:
//
//	newswire demo-server --port 8080
//	newswire fetch --base-url http://localhost:8080
package demoserver

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/urfave/cli/v2"
)

// Server serves the fixture feed.
type Server struct {
	router chi.Router
}

// New creates a demo server with its routes registered.
func New() *Server {
	s := &Server{}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Get("/data/list.json", s.listHandler)
	r.Get("/data/articles/{id}.json", s.articleHandler)
	r.Get("/data/media/{id}.json", s.mediaHandler)
	s.router = r

	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving on the given port.
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Demo feed at http://localhost%s/data/list.json\n", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) listHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, fixtureHeadings)
}

func (s *Server) articleHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	detail, ok := fixtureDetails[id]
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, detail)
}

func (s *Server) mediaHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	media, ok := fixtureMedia[id]
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, media)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Action is the demo-server CLI command.
func Action(c *cli.Context) error {
	return New().Start(c.Int("port"))
}
