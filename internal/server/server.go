// Package server is the web gallery: it serves catalog components rendered
// as HTML, their resolved styles as JSON, the design tokens and Prometheus
// metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexisbeaulieu97/woosign/internal/components"
	"github.com/alexisbeaulieu97/woosign/internal/logger"
	"github.com/alexisbeaulieu97/woosign/internal/render"
	"github.com/alexisbeaulieu97/woosign/internal/render/web"
	"github.com/alexisbeaulieu97/woosign/internal/theme"
	apperrors "github.com/alexisbeaulieu97/woosign/pkg/errors"
	"github.com/alexisbeaulieu97/woosign/pkg/style"
	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

const shutdownTimeout = 5 * time.Second

// CatalogFunc builds the catalog for a theme.
type CatalogFunc func(theme.Theme) (*components.Catalog, error)

type schemeCatalog struct {
	theme   theme.Theme
	catalog *components.Catalog
}

// Server serves the gallery. Catalogs are built once per scheme at
// construction and are read-only afterwards.
type Server struct {
	schemes       map[theme.ColorScheme]schemeCatalog
	defaultScheme theme.ColorScheme
	renderer      render.Renderer
	metrics       *Metrics
	log           *logger.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

// WithMetrics replaces the collectors, mainly so tests can inspect them.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// New builds one catalog per theme. The first theme's scheme is served when a
// request names none.
func New(themes []theme.Theme, build CatalogFunc, opts ...Option) (*Server, error) {
	if len(themes) == 0 {
		return nil, apperrors.NewValidationError("themes", "at least one theme is required", nil)
	}

	s := &Server{
		schemes:       make(map[theme.ColorScheme]schemeCatalog, len(themes)),
		defaultScheme: themes[0].Scheme,
		renderer:      web.New(),
		log:           logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}

	for _, t := range themes {
		catalog, err := build(t)
		if err != nil {
			return nil, fmt.Errorf("build %s catalog: %w", t.Scheme, err)
		}
		s.schemes[t.Scheme] = schemeCatalog{theme: t, catalog: catalog}
	}
	return s, nil
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Handler returns the gallery router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	r.Get("/tokens", s.handleTokens)
	r.Get("/components", s.handleList)
	r.Get("/components/{name}", s.handleRender)
	r.Get("/components/{name}/styles", s.handleStyles)
	return r
}

// ListenAndServe serves Handler on addr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.With("addr", addr).Info("gallery listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("gallery stopped")
	return nil
}

func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()

		s.log.WithFields(map[string]any{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     status,
			"duration":   time.Since(start).String(),
			"request_id": middleware.GetReqID(r.Context()),
		}).Debug("request")
	})
}

type componentSummary struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Parts       []string            `json:"parts"`
	Axes        map[string][]string `json:"axes"`
	Custom      bool                `json:"custom,omitempty"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	sc, err := s.scheme(r)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]componentSummary, 0)
	for _, e := range sc.catalog.Entries() {
		axes := make(map[string][]string)
		for _, axis := range e.Axes() {
			axes[axis] = e.AxisValues(axis)
		}
		out = append(out, componentSummary{
			Name:        e.Name,
			Description: e.Description,
			Parts:       e.PartNames(),
			Axes:        axes,
			Custom:      e.Custom,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type partStyles struct {
	Style   style.Map                 `json:"style"`
	Lookups []variants.AxisResolution `json:"lookups"`
}

type stylesResponse struct {
	Component string                `json:"component"`
	Scheme    theme.ColorScheme     `json:"scheme"`
	Selection variants.Selection    `json:"selection"`
	Parts     map[string]partStyles `json:"parts"`
}

func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	sc, entry, err := s.entry(r)
	if err != nil {
		writeError(w, err)
		return
	}

	sel := selectionFromQuery(entry, r)
	parts := make(map[string]partStyles, len(entry.Parts))
	for _, p := range entry.Parts {
		lookups := p.Definition.Explain(sel)
		parts[p.Name] = partStyles{Style: p.Definition.Resolve(sel), Lookups: lookups}
	}
	s.observeEntry(entry, sel)

	writeJSON(w, http.StatusOK, stylesResponse{
		Component: entry.Name,
		Scheme:    sc.theme.Scheme,
		Selection: sel,
		Parts:     parts,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sc, entry, err := s.entry(r)
	if err != nil {
		writeError(w, err)
		return
	}

	state, err := stateFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	sel := selectionFromQuery(entry, r)
	s.observeEntry(entry, sel)
	node := entry.Build(components.Request{
		Selection: sel,
		State:     state,
		Text:      r.URL.Query().Get("text"),
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, page, html.EscapeString(entry.Name), html.EscapeString(sc.theme.Colors.Background), s.renderer.Render(node))
}

const page = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body style="background-color: %s; padding: 24px;">
%s
</body>
</html>
`

func (s *Server) handleTokens(w http.ResponseWriter, r *http.Request) {
	sc, err := s.scheme(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sc.theme)
}

func (s *Server) observeEntry(entry *components.Entry, sel variants.Selection) {
	primary, err := entry.Part("")
	if err != nil {
		return
	}
	s.metrics.ObserveResolution(entry.Name, primary.Definition.Explain(sel))
}

func (s *Server) scheme(r *http.Request) (schemeCatalog, error) {
	name := s.defaultScheme
	if raw := r.URL.Query().Get("scheme"); raw != "" {
		parsed, err := theme.ParseColorScheme(raw)
		if err != nil {
			return schemeCatalog{}, apperrors.NewValidationError("scheme", err.Error(), err)
		}
		name = parsed
	}
	sc, ok := s.schemes[name]
	if !ok {
		return schemeCatalog{}, apperrors.NewNotFoundError("scheme", string(name))
	}
	return sc, nil
}

func (s *Server) entry(r *http.Request) (schemeCatalog, *components.Entry, error) {
	sc, err := s.scheme(r)
	if err != nil {
		return schemeCatalog{}, nil, err
	}
	entry, err := sc.catalog.Get(chi.URLParam(r, "name"))
	if err != nil {
		return schemeCatalog{}, nil, err
	}
	return sc, entry, nil
}

// selectionFromQuery reads one query parameter per declared axis. Other
// parameters are ignored.
func selectionFromQuery(entry *components.Entry, r *http.Request) variants.Selection {
	q := r.URL.Query()
	sel := variants.Selection{}
	for _, axis := range entry.Axes() {
		if v := q.Get(axis); v != "" {
			sel[axis] = v
		}
	}
	return sel
}

// stateFromQuery accepts both ?state=hover,disabled and bare flags such as
// ?hover or ?disabled=true. A flag set to false or 0 is ignored.
func stateFromQuery(r *http.Request) (components.State, error) {
	q := r.URL.Query()
	var names []string
	if raw := q.Get("state"); raw != "" {
		names = append(names, strings.Split(raw, ",")...)
	}
	for _, flag := range components.StateNames {
		values, ok := q[flag]
		if !ok {
			continue
		}
		v := ""
		if len(values) > 0 {
			v = strings.ToLower(values[0])
		}
		if v == "false" || v == "0" {
			continue
		}
		names = append(names, flag)
	}
	return components.ParseState(names...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var notFound *apperrors.NotFoundError
	var invalid *apperrors.ValidationError
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &invalid):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
