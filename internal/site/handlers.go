package site

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gyansetu/website/internal/metrics"
	"github.com/gyansetu/website/internal/router"
	"github.com/gyansetu/website/internal/theme"
	"github.com/gyansetu/website/internal/view"
)

// Handler serves pages, the theme form and the embedded static files.
type Handler struct {
	renderer *Renderer
	routes   *router.Table
	themes   *theme.Registry
	cookie   string
	assets   string
	metrics  *metrics.Metrics
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithAssets serves files under dir at /static/img/.
func WithAssets(dir string) HandlerOption {
	return func(h *Handler) { h.assets = dir }
}

// WithMetrics records page renders and theme toggles.
func WithMetrics(m *metrics.Metrics) HandlerOption {
	return func(h *Handler) { h.metrics = m }
}

// NewHandler creates a Handler. cookie names the visitor cookie.
func NewHandler(r *Renderer, routes *router.Table, themes *theme.Registry, cookie string, opts ...HandlerOption) *Handler {
	h := &Handler{renderer: r, routes: routes, themes: themes, cookie: cookie}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the handler's routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/static/style.css", staticFile("text/css; charset=utf-8", cssContent))
	r.Get("/static/live.js", staticFile("text/javascript; charset=utf-8", jsContent))
	if h.assets != "" {
		if info, err := os.Stat(h.assets); err == nil && info.IsDir() {
			r.Handle("/static/img/*", http.StripPrefix("/static/img/", http.FileServer(http.Dir(h.assets))))
		} else {
			log.Printf("site: assets dir %s not found, images disabled", h.assets)
		}
	}
	r.Post("/theme/toggle", h.toggleTheme)
	h.routes.Mount(r, h.page)
}

func (h *Handler) page(route router.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := VisitorID(w, r, h.cookie)
		store, release := h.themes.Store(r.Context(), id)
		defer release()

		f := view.Frame{
			Route: route,
			Tab:   r.URL.Query().Get("tab"),
			Intro: route.Page == router.Home,
		}
		var buf bytes.Buffer
		if err := h.renderer.Page(&buf, f, store.Get()); err != nil {
			log.Printf("site: rendering %s: %v", route.Path, err)
			h.metrics.PageRendered(string(route.Page), "500")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		code := http.StatusOK
		if route.Page == router.NotFound {
			code = http.StatusNotFound
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(code)
		w.Write(buf.Bytes())
		h.metrics.PageRendered(string(route.Page), strconv.Itoa(code))
	}
}

// toggleTheme flips the visitor's theme. Script-less browsers post the
// form and are sent back to the page they came from.
func (h *Handler) toggleTheme(w http.ResponseWriter, r *http.Request) {
	id := VisitorID(w, r, h.cookie)
	store, release := h.themes.Store(r.Context(), id)
	defer release()

	mode := store.Toggle()
	h.metrics.ThemeToggled(string(mode), "form")

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		writeJSON(w, http.StatusOK, map[string]string{"theme": string(mode)})
		return
	}
	http.Redirect(w, r, safeReturn(r.FormValue("return")), http.StatusSeeOther)
}

// safeReturn keeps redirects on this site.
func safeReturn(path string) string {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return "/"
	}
	return path
}

func staticFile(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write([]byte(body))
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
