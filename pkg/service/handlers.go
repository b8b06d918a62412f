package service

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/mermaid/pkg/buildinfo"
	"github.com/matzehuels/mermaid/pkg/errors"
	"github.com/matzehuels/mermaid/pkg/pipeline"
	"github.com/matzehuels/mermaid/pkg/store"
)

// renderRequest is the body of POST /api/render and POST /api/diagrams.
type renderRequest struct {
	// Manifest is the manifest text.
	Manifest string `json:"manifest"`

	// Format is the manifest format, toml (default) or json.
	Format string `json:"format,omitempty"`

	// Name overrides the manifest name for stored diagrams.
	Name string `json:"name,omitempty"`

	// Refresh bypasses the render cache.
	Refresh bool `json:"refresh,omitempty"`
}

// renderResponse is the body of a successful POST /api/render.
type renderResponse struct {
	Kind      string `json:"kind"`
	Text      string `json:"text"`
	Hash      string `json:"hash"`
	NodeCount int    `json:"node_count"`
	EdgeCount int    `json:"edge_count"`
	RenderHit bool   `json:"render_hit"`
}

// errorResponse is the body of every error reply.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRender(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Manifest: req.Manifest,
		Format:   req.Format,
		Refresh:  req.Refresh,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, renderResponse{
		Kind:      string(result.Kind),
		Text:      result.Text,
		Hash:      result.Hash,
		NodeCount: result.Stats.NodeCount,
		EdgeCount: result.Stats.EdgeCount,
		RenderHit: result.CacheInfo.RenderHit,
	})
}

func (s *Server) handleCreateDiagram(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRender(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := pipeline.Options{
		Manifest: req.Manifest,
		Format:   req.Format,
		Refresh:  req.Refresh,
	}
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	name := req.Name
	if name == "" {
		name = result.Manifest.Name
	}

	now := time.Now().UTC()
	d := &store.Diagram{
		ID:        uuid.NewString(),
		Name:      name,
		Kind:      string(result.Kind),
		Manifest:  req.Manifest,
		Format:    string(opts.DecodeFormat()),
		Text:      result.Text,
		Hash:      result.Hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Put(r.Context(), d); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleListDiagrams(w http.ResponseWriter, r *http.Request) {
	diagrams, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, diagrams)
}

func (s *Server) handleGetDiagram(w http.ResponseWriter, r *http.Request) {
	id, err := diagramID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	d, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeleteDiagram(w http.ResponseWriter, r *http.Request) {
	id, err := diagramID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeRender decodes and checks a render request body. Unknown fields are
// rejected so that a mistyped field never silently renders the wrong thing.
func (s *Server) decodeRender(w http.ResponseWriter, r *http.Request) (*renderRequest, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	var req renderRequest
	if err := dec.Decode(&req); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	if req.Manifest == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "manifest is required")
	}
	return &req, nil
}

// diagramID extracts and validates the diagram ID path parameter.
func diagramID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid diagram id %q", id)
	}
	return id, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
	}

	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	s.writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}
