package handlers

import (
	"net/http"

	"vicheka.dev/internal/listview"
	"vicheka.dev/internal/middleware"
	"vicheka.dev/internal/services"
	"vicheka.dev/internal/views"
)

// TutorialHandler serves the tutorials browser and the HTML tutorials page
type TutorialHandler struct {
	tutorialService *services.TutorialService
	pages           *pageRenderer
}

// NewTutorialHandler creates a new TutorialHandler
func NewTutorialHandler(ts *services.TutorialService, pages *pageRenderer) *TutorialHandler {
	return &TutorialHandler{tutorialService: ts, pages: pages}
}

// Page handles GET /tutorials. htmx requests get the list fragment only,
// always with 200 so htmx swaps a failure message in too.
func (h *TutorialHandler) Page(w http.ResponseWriter, r *http.Request) {
	params := listview.ParseParams(r.URL.Query())
	state := h.tutorialService.Load(r.Context(), params)
	content := h.pages.views.TutorialsPage(r.URL.Path, state, params)

	if middleware.IsHTMX(r.Context()) {
		h.pages.fragment(w, r, views.PageTutorials, "tutorial-list", content)
		return
	}
	h.pages.render(w, r, statusFor(state.IsFailed()), views.PageTutorials, "Tutorials", content)
}

// HTMLPage handles GET /tutorials/html
func (h *TutorialHandler) HTMLPage(w http.ResponseWriter, r *http.Request) {
	state := h.tutorialService.LoadHTML(r.Context())
	content := h.pages.views.HTMLTutorialsPage(r.URL.Path, state)
	h.pages.render(w, r, statusFor(state.IsFailed()), views.PageHTMLTutorials, "HTML Tutorials", content)
}
