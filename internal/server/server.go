// Package server wires the portfolio HTTP surface: the rendered public page,
// the authenticated JSON management API, and the photo/resume uploads.
package server

import (
	"crypto/subtle"
	htmltemplate "html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/foliokit/folio/internal/cache"
	"github.com/foliokit/folio/internal/config"
	"github.com/foliokit/folio/internal/logging"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/store"
	foliotemplate "github.com/foliokit/folio/internal/template"
)

// pageCacheKey is the single cache key for the rendered portfolio page.
const pageCacheKey = "page"

// Server is the main folio HTTP server.
type Server struct {
	cfg      *config.Config
	version  string
	store    *store.Store
	mdRender *render.MarkdownRenderer
	tmpl     *foliotemplate.Renderer
	pages    *cache.Cache
	mux      *http.ServeMux
}

// New creates a server around an opened store.
func New(cfg *config.Config, version string, st *store.Store) *Server {
	s := &Server{
		cfg:      cfg,
		version:  version,
		store:    st,
		mdRender: render.NewMarkdownRenderer(),
		tmpl:     foliotemplate.NewRenderer(),
		pages:    cache.New(cfg.CacheTTL, cfg.CacheMaxSize),
		mux:      http.NewServeMux(),
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
	s.mux.HandleFunc("GET /{$}", s.handlePage)
	s.mux.HandleFunc("GET /photo", s.handlePhoto)
	s.mux.HandleFunc("GET /resume", s.handleResume)

	s.mux.HandleFunc("GET /api/portfolio", s.handlePortfolioJSON)
	s.mux.HandleFunc("PUT /api/profile", s.requireAuth(s.handleUpdateProfile))
	s.mux.HandleFunc("POST /api/photo", s.requireAuth(s.handlePhotoUpload))
	s.mux.HandleFunc("POST /api/resume", s.requireAuth(s.handleResumeUpload))

	registerEntityRoutes(s, "experience", entityHandlers[store.Experience]{
		add:    s.store.AddExperience,
		update: s.store.UpdateExperience,
		delete: s.store.DeleteExperience,
		setID:  func(e *store.Experience, id string) { e.ID = id },
		desc:   func(e store.Experience) string { return e.Description },
	})
	registerEntityRoutes(s, "projects", entityHandlers[store.Project]{
		add:    s.store.AddProject,
		update: s.store.UpdateProject,
		delete: s.store.DeleteProject,
		setID:  func(p *store.Project, id string) { p.ID = id },
		desc:   func(p store.Project) string { return p.Description },
	})
	registerEntityRoutes(s, "skills", entityHandlers[store.Skill]{
		add:    s.store.AddSkill,
		update: s.store.UpdateSkill,
		delete: s.store.DeleteSkill,
		setID:  func(sk *store.Skill, id string) { sk.ID = id },
	})
	registerEntityRoutes(s, "education", entityHandlers[store.Education]{
		add:    s.store.AddEducation,
		update: s.store.UpdateEducation,
		delete: s.store.DeleteEducation,
		setID:  func(e *store.Education, id string) { e.ID = id },
		desc:   func(e store.Education) string { return e.Description },
	})
	registerEntityRoutes(s, "awards", entityHandlers[store.Award]{
		add:    s.store.AddAward,
		update: s.store.UpdateAward,
		delete: s.store.DeleteAward,
		setID:  func(a *store.Award, id string) { a.ID = id },
		desc:   func(a store.Award) string { return a.Description },
	})
	registerEntityRoutes(s, "certifications", entityHandlers[store.Certification]{
		add:    s.store.AddCertification,
		update: s.store.UpdateCertification,
		delete: s.store.DeleteCertification,
		setID:  func(c *store.Certification, id string) { c.ID = id },
		desc:   func(c store.Certification) string { return c.Description },
	})
}

// Handler returns the server's HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = s.loggingMiddleware(h)
	h = securityHeaders(h)
	return h
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(200)
	w.Write([]byte("OK"))
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if entry, status := s.pages.Get(pageCacheKey); status == cache.StatusHit {
		s.writePage(w, entry.HTML, string(status), 0)
		return
	}

	start := time.Now()
	p := s.store.Portfolio()

	var summary []byte
	if p.Profile.Summary != "" {
		var err error
		summary, err = s.mdRender.Render([]byte(p.Profile.Summary))
		if err != nil {
			logging.FromContext(r.Context()).Error("render summary failed", "error", err)
			summary = nil
		}
	}

	page := s.tmpl.RenderPage(foliotemplate.PageData{
		Version:      s.version,
		DefaultTheme: s.cfg.DefaultTheme,
		Portfolio:    p,
		Summary:      htmltemplate.HTML(summary),
		HasPhoto:     p.Profile.PhotoPath != "",
		HasResume:    p.Profile.ResumePath != "",
	})
	renderMs := time.Since(start).Milliseconds()

	s.pages.Put(pageCacheKey, cache.Entry{HTML: page, Size: int64(len(page))})
	s.writePage(w, page, string(cache.StatusMiss), renderMs)
}

func (s *Server) writePage(w http.ResponseWriter, page []byte, cacheStatus string, renderMs int64) {
	w.Header().Set("X-Folio-Version", s.version)
	w.Header().Set("X-Folio-Cache", cacheStatus)
	w.Header().Set("X-Folio-Render-Ms", strconv.FormatInt(renderMs, 10))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(200)
	w.Write(page)
}

// invalidatePage drops the cached page so the next request re-renders.
// Called after every content mutation.
func (s *Server) invalidatePage() {
	s.pages.Invalidate(pageCacheKey)
}

// requireAuth guards mutating endpoints with the configured bearer token.
// An empty token disables mutations entirely.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.AdminToken == "" {
			apiError(w, http.StatusForbidden, "management API is disabled: no admin token configured")
			return
		}

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.AdminToken)) != 1 {
			w.Header().Set("WWW-Authenticate", "Bearer")
			apiError(w, http.StatusUnauthorized, "invalid or missing bearer token")
			return
		}

		next(w, r)
	}
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &logging.ByteCountingWriter{ResponseWriter: w}
		next.ServeHTTP(wrapped, r)

		if wrapped.StatusCode == 0 {
			wrapped.StatusCode = 200
		}

		logging.LogRequest(slog.Default(), logging.RequestFields{
			Method:   r.Method,
			Path:     r.URL.Path,
			Status:   wrapped.StatusCode,
			Cache:    wrapped.Header().Get("X-Folio-Cache"),
			RenderMs: parseHeaderInt64(wrapped.Header().Get("X-Folio-Render-Ms")),
			TotalMs:  time.Since(start).Milliseconds(),
			Bytes:    wrapped.Bytes,
		})
	})
}

func parseHeaderInt64(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}
