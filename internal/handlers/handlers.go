package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"vicheka.dev/internal/config"
	"vicheka.dev/internal/middleware"
	"vicheka.dev/internal/nav"
	"vicheka.dev/internal/services"
	"vicheka.dev/internal/views"
)

// requestTimeout bounds a whole page load, backend fetches included
const requestTimeout = 30 * time.Second

// Backend is everything the site reads from the API
type Backend interface {
	services.ProjectSource
	services.TutorialSource
	services.ContactSource
	ImageURL(image string) string
}

// Paths lists every page that has a fixed URL, in menu order
var Paths = []string{
	nav.Home,
	nav.About,
	nav.Projects,
	nav.Tutorials,
	nav.Tutorials + "/" + services.HTMLSlug,
	nav.Contact,
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, backend Backend, logger *zap.Logger) (http.Handler, error) {
	v, err := views.New(views.Options{
		SiteTitle: cfg.Site.Title,
		Owner:     cfg.Site.Owner,
		ImageURL:  backend.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("loading views: %w", err)
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(middleware.HTMX)

	// Initialize services
	projectService := services.NewProjectService(backend, logger)
	tutorialService := services.NewTutorialService(backend, logger)
	contactService := services.NewContactService(backend, logger)

	// Initialize handlers
	pages := &pageRenderer{views: v, logger: logger}
	projectHandler := NewProjectHandler(projectService, pages)
	tutorialHandler := NewTutorialHandler(tutorialService, pages)
	contactHandler := NewContactHandler(contactService, pages)

	r.Get(nav.Home, pages.static(views.PageHome, "Home"))
	r.Get(nav.About, pages.static(views.PageAbout, "About Me"))
	r.Get(nav.Projects, projectHandler.Page)
	r.Get(nav.Tutorials, tutorialHandler.Page)
	r.Get(nav.Tutorials+"/"+services.HTMLSlug, tutorialHandler.HTMLPage)
	r.Get(nav.Contact, contactHandler.Page)

	// JSON routes
	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			MaxAge:         300,
		}))

		r.Get("/api/projects", projectHandler.ListProjects)
		r.Get("/api/projects/{id}", projectHandler.GetProject)

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.FS(views.Static()))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	r.NotFound(pages.notFound)

	return r, nil
}

// pageRenderer writes pages for every handler and owns the shared
// failure handling
type pageRenderer struct {
	views  *views.Views
	logger *zap.Logger
}

// render writes page inside the layout. Nothing is written once the client
// has gone away.
func (p *pageRenderer) render(w http.ResponseWriter, r *http.Request, status int, page, title string, content any) {
	if r.Context().Err() != nil {
		p.logger.Debug("client gone before render", zap.String("path", r.URL.Path))
		return
	}
	if err := p.views.Render(w, status, page, p.views.Layout(title, r.URL.Path, content)); err != nil {
		p.fail(w, r, err)
	}
}

// fragment writes only the named template for an htmx swap
func (p *pageRenderer) fragment(w http.ResponseWriter, r *http.Request, page, name string, content any) {
	if r.Context().Err() != nil {
		return
	}
	if err := p.views.Fragment(w, page, name, content); err != nil {
		p.fail(w, r, err)
	}
}

func (p *pageRenderer) fail(w http.ResponseWriter, r *http.Request, err error) {
	p.logger.Error("rendering page",
		zap.String("path", r.URL.Path),
		zap.String("request_id", chimw.GetReqID(r.Context())),
		zap.Error(err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// statusFor is the status of a list page: 503 when its data failed to load
func statusFor(failed bool) int {
	if failed {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func (p *pageRenderer) static(page, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.render(w, r, http.StatusOK, page, title, p.views.StaticPage())
	}
}

func (p *pageRenderer) notFound(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusNotFound, views.PageNotFound, "Page Not Found", nil)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
