// Package server exposes the workspace over a small JSON HTTP API, including
// the shared-roadmap endpoint that backs shareable links.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/flowlabs/flowmap/internal/infrastructure/wiring"
	"github.com/flowlabs/flowmap/pkg/application"
	"github.com/flowlabs/flowmap/pkg/domain/profile"
	"github.com/flowlabs/flowmap/pkg/domain/progress"
	"github.com/flowlabs/flowmap/pkg/domain/roadmap"
)

// Server serves the workspace API.
type Server struct {
	services *wiring.AppServices
	mux      *http.ServeMux
}

func New(services *wiring.AppServices) *Server {
	services.SetActor("http")

	s := &Server{
		services: services,
		mux:      http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /api/roadmaps", s.handleGenerate)
	s.mux.HandleFunc("GET /api/roadmaps/latest", s.handleLatest)
	s.mux.HandleFunc("GET /api/domains", s.handleDomains)
	s.mux.HandleFunc("GET /api/progress", s.handleProgress)
	s.mux.HandleFunc("POST /api/progress/transitions", s.handleTransition)
	s.mux.HandleFunc("GET /api/export", s.handleExport)
	s.mux.HandleFunc("GET /shared/{id}", s.handleShared)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe runs the API server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var p profile.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid profile: %v", err))
		return
	}

	rm, err := s.services.Generator().Generate(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, rm)
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	rm, err := s.services.Generator().GetRoadmap()
	if err != nil {
		if errors.Is(err, roadmap.ErrNoRoadmap) {
			writeError(w, http.StatusNotFound, "no roadmap generated yet")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rm)
}

func (s *Server) handleDomains(w http.ResponseWriter, r *http.Request) {
	type domainInfo struct {
		Name   string   `json:"name"`
		Levels []string `json:"levels"`
	}
	templates := s.services.Templates()
	out := make([]domainInfo, 0)
	for _, name := range templates.Domains() {
		info := domainInfo{Name: name, Levels: []string{}}
		for _, l := range templates.Levels(name) {
			info.Levels = append(info.Levels, l.String())
		}
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	state, err := s.services.Progress.GetProgress()
	if err != nil {
		if errors.Is(err, roadmap.ErrNoRoadmap) || errors.Is(err, progress.ErrNoState) {
			writeError(w, http.StatusNotFound, "no roadmap generated yet")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleTransition(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TopicID string `json:"topic_id"`
		Event   string `json:"event"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	status, err := s.services.Progress.Transition(req.TopicID, req.Event)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"topic_id": req.TopicID,
		"status":   status.String(),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := application.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = application.ExportMarkdown
	}

	doc, err := s.services.Export.Export(format)
	if err != nil {
		if errors.Is(err, roadmap.ErrNoRoadmap) {
			writeError(w, http.StatusNotFound, "no roadmap generated yet")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch format {
	case application.ExportJSON:
		w.Header().Set("Content-Type", "application/json")
	case application.ExportMarkdown:
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

// handleShared resolves shareable links of the form /shared/{roadmap id}.
// Only the workspace's current roadmap is addressable.
func (s *Server) handleShared(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	rm, err := s.services.Generator().GetRoadmap()
	if err != nil || rm.ID != id {
		writeError(w, http.StatusNotFound, "roadmap not found")
		return
	}
	writeJSON(w, http.StatusOK, rm)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
