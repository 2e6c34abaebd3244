package handlers

import (
	"net/http"

	"vicheka.dev/internal/services"
	"vicheka.dev/internal/views"
)

// ContactHandler serves the contact page
type ContactHandler struct {
	contactService *services.ContactService
	pages          *pageRenderer
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService, pages *pageRenderer) *ContactHandler {
	return &ContactHandler{contactService: cs, pages: pages}
}

// Page handles GET /contact
func (h *ContactHandler) Page(w http.ResponseWriter, r *http.Request) {
	state := h.contactService.Load(r.Context())
	h.pages.render(w, r, statusFor(state.IsFailed()), views.PageContact, "Contact Me", h.pages.views.ContactPage(state))
}
