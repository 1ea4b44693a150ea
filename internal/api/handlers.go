package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/matzehuels/tagflow/pkg/buildinfo"
	"github.com/matzehuels/tagflow/pkg/errors"
	"github.com/matzehuels/tagflow/pkg/layout"
	"github.com/matzehuels/tagflow/pkg/pipeline"
	"github.com/matzehuels/tagflow/pkg/tags"
)

// Request is the body of the layout and render endpoints. Exactly one of
// Tags, Labels and Document must be given. Layout applies to Tags and Labels;
// a Document carries its own [layout] table, so the two cannot be combined.
type Request struct {
	Tags   []tags.Tag     `json:"tags,omitempty"`
	Layout *tags.Settings `json:"layout,omitempty"`
	Labels []string       `json:"labels,omitempty"`

	Document       string `json:"document,omitempty"`
	DocumentFormat string `json:"document_format,omitempty"`

	Options pipeline.Options `json:"options"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// contentTypes maps artifact formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatText: "text/plain; charset=utf-8",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	req, set, err := s.decode(w, r)
	if err != nil {
		writeErr(w, err)
		return
	}

	l, hit, err := s.runner.LayoutWithCacheInfo(r.Context(), set, req.Options)
	if err != nil {
		writeErr(w, err)
		return
	}
	data, err := layout.Marshal(l)
	if err != nil {
		writeErr(w, errors.Wrap(errors.ErrCodeInternal, err, "encode layout"))
		return
	}
	setCacheHeader(w, hit)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = pipeline.FormatSVG
	}
	if format == "text" {
		format = pipeline.FormatText
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		writeErr(w, err)
		return
	}

	req, set, err := s.decode(w, r)
	if err != nil {
		writeErr(w, err)
		return
	}
	opts := req.Options
	opts.Formats = []string{format}
	if style := r.URL.Query().Get("style"); style != "" {
		opts.Style = style
	}

	result, err := s.runner.ExecuteSet(r.Context(), set, opts)
	if err != nil {
		writeErr(w, err)
		return
	}
	setCacheHeader(w, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// decode reads the request body and resolves it to a normalized tag set.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (Request, *tags.Set, error) {
	var req Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	set, err := req.set(r)
	return req, set, err
}

func (req Request) set(r *http.Request) (*tags.Set, error) {
	given := 0
	for _, ok := range []bool{len(req.Tags) > 0, len(req.Labels) > 0, req.Document != ""} {
		if ok {
			given++
		}
	}
	if given != 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "exactly one of tags, labels or document is required")
	}

	var settings tags.Settings
	if req.Layout != nil {
		settings = *req.Layout
	}

	switch {
	case req.Document != "":
		if req.Layout != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "layout cannot be combined with document; use the document's [layout] table")
		}
		return pipeline.Load(r.Context(), pipeline.Options{
			Document:       []byte(req.Document),
			DocumentFormat: req.DocumentFormat,
		})
	case len(req.Labels) > 0:
		set, err := tags.FromLabels(req.Labels...)
		if err != nil {
			return nil, err
		}
		set.Layout = settings
		return set, nil
	default:
		set := &tags.Set{Layout: settings, Tags: req.Tags}
		if err := set.Normalize(); err != nil {
			return nil, err
		}
		return set, nil
	}
}

func setCacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
