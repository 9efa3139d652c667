package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/printgrid/pkg/errors"
	"github.com/matzehuels/printgrid/pkg/layout"
	"github.com/matzehuels/printgrid/pkg/paper"
	"github.com/matzehuels/printgrid/pkg/pipeline"
)

// layoutResponse is the body of POST /api/v1/layout.
type layoutResponse struct {
	Layout     *layout.Result `json:"layout"`
	LayoutHash string         `json:"layout_hash"`
	PageCount  int            `json:"page_count"`
	CacheHit   bool           `json:"cache_hit"`
}

// renderResponse is the body of POST /api/v1/render. Artifact pages are
// base64-encoded by the JSON marshaller.
type renderResponse struct {
	LayoutHash string              `json:"layout_hash"`
	PageCount  int                 `json:"page_count"`
	Artifacts  map[string][][]byte `json:"artifacts"`
	CacheHit   bool                `json:"cache_hit"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid request body"))
		return
	}
	// API requests carry refs inline; filesystem sources are CLI-only.
	opts.Dir, opts.Files, opts.Manifest = "", nil, ""

	refs, err := s.runner.Scan(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	res, hit, err := s.runner.ComputeLayoutWithCacheInfo(r.Context(), refs, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, layoutResponse{
		Layout:     res,
		LayoutHash: hashResult(res),
		PageCount:  res.PageCount(),
		CacheHit:   hit,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid request body"))
		return
	}
	opts.Dir, opts.Files, opts.Manifest = "", nil, ""

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, renderResponse{
		LayoutHash: result.LayoutHash,
		PageCount:  result.Stats.PageCount,
		Artifacts:  result.Artifacts,
		CacheHit:   result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
	})
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"templates": s.registry.List()})
}

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var t layout.Template
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid request body"))
		return
	}
	stored, err := s.registry.Register(r.Context(), t)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t, ok := s.registry.Resolve(id)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeLayoutNotFound, "no layout template %q", id))
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	var t layout.Template
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid request body"))
		return
	}
	t.ID = chi.URLParam(r, "id")
	stored, err := s.registry.Register(r.Context(), t)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	removed, err := s.registry.Remove(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !removed {
		writeError(w, errors.New(errors.ErrCodeLayoutNotFound, "no layout template %q", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListPapers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"papers": paper.List()})
}
