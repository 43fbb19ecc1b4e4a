// Package server exposes the explorer over HTTP for a browser front end:
// fetch an endpoint, inspect the schema, run queries, apply the simple
// column filter, and export the currently displayed result set.
package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/apiscope/apiscope/internal/config"
	"github.com/apiscope/apiscope/internal/fetch"
	"github.com/apiscope/apiscope/internal/query"
)

// Server holds the loaded datasets and their query sessions. Query execution
// itself is synchronous and touches only in-memory state; the mutex
// serializes access so a dataset swap can never interleave with a running
// query.
type Server struct {
	cfg    *config.Config
	client *fetch.Client
	log    *logrus.Logger

	mu       sync.Mutex
	sessions map[string]*query.Session
	filtered map[string][]map[string]interface{}
}

// New creates a server from the configuration.
func New(cfg *config.Config, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{
		cfg:      cfg,
		client:   fetch.NewClient(cfg.FetchTimeout, cfg.MaxBodyBytes),
		log:      log,
		sessions: make(map[string]*query.Session),
		filtered: make(map[string][]map[string]interface{}),
	}
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/fetch", s.handleFetch).Methods(http.MethodPost)
	api.HandleFunc("/datasets/{id}/schema", s.handleSchema).Methods(http.MethodGet)
	api.HandleFunc("/datasets/{id}/data", s.handleData).Methods(http.MethodGet)
	api.HandleFunc("/datasets/{id}/query", s.handleQuery).Methods(http.MethodPost)
	api.HandleFunc("/datasets/{id}/reset", s.handleReset).Methods(http.MethodPost)
	api.HandleFunc("/datasets/{id}/filter", s.handleFilter).Methods(http.MethodPost)
	api.HandleFunc("/datasets/{id}/export", s.handleExport).Methods(http.MethodGet)
	return r
}

// ListenAndServe runs the HTTP server until it fails.
func (s *Server) ListenAndServe() error {
	s.log.WithField("addr", s.cfg.ListenAddr).Info("apiscope API listening")
	srv := &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}

// session looks up the session for a dataset handle.
func (s *Server) session(id string) (*query.Session, bool) {
	sess, ok := s.sessions[id]
	return sess, ok
}
