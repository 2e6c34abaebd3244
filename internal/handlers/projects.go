package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vicheka.dev/internal/listview"
	"vicheka.dev/internal/services"
	"vicheka.dev/internal/views"
)

// ProjectHandler serves the projects gallery and its JSON listing
type ProjectHandler struct {
	projectService *services.ProjectService
	pages          *pageRenderer
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, pages *pageRenderer) *ProjectHandler {
	return &ProjectHandler{projectService: ps, pages: pages}
}

// Page handles GET /projects
func (h *ProjectHandler) Page(w http.ResponseWriter, r *http.Request) {
	params := listview.ParseParams(r.URL.Query())
	state := h.projectService.Load(r.Context(), params)
	content := h.pages.views.ProjectsPage(r.URL.Path, state, params)
	h.pages.render(w, r, statusFor(state.IsFailed()), views.PageProjects, "Projects", content)
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	state := h.projectService.Load(r.Context(), listview.Params{})
	if !state.IsReady() {
		respondError(w, h.pages.logger, http.StatusBadGateway, state.Message())
		return
	}
	respondJSON(w, h.pages.logger, http.StatusOK, state.Items())
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.pages.logger, http.StatusNotFound, "Project not found")
		return
	}

	state := h.projectService.Load(r.Context(), listview.Params{Expanded: &id})
	if !state.IsReady() {
		respondError(w, h.pages.logger, http.StatusBadGateway, state.Message())
		return
	}

	project := state.Expanded()
	if project == nil {
		respondError(w, h.pages.logger, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, h.pages.logger, http.StatusOK, project)
}
