package views

import (
	"html/template"
	"time"

	"vicheka.dev/internal/format"
	"vicheka.dev/internal/listview"
	"vicheka.dev/internal/models"
)

// placeholderImage stands in for HTML tutorials without an image
const placeholderImage = "https://via.placeholder.com/300x150?text=HTML+Tutorial"

// StaticPage is the content of the home and about pages
type StaticPage struct {
	Owner string
}

// ListPage is the content of a projects or tutorials page
type ListPage struct {
	Loading    bool
	Failed     bool
	Message    string
	RetryHref  string
	EmptyText  string
	Categories []CategoryLink
	Cards      []Card
	Overlay    *Overlay
}

// CategoryLink is one entry of the tutorials sidebar
type CategoryLink struct {
	Name   string
	Href   string
	Active bool
}

// Card is one item of a list grid
type Card struct {
	ID      int
	Title   string
	Image   string
	Link    string
	Text    string
	Excerpt template.HTML
	Created string
	// DetailHref opens the detail overlay; empty when the page has none
	DetailHref string
}

// Overlay is the full view of the expanded item
type Overlay struct {
	Title       string
	Image       string
	Link        string
	LinkLabel   string
	Description template.HTML
	CloseHref   string
}

// ContactPage is the content of the contact page
type ContactPage struct {
	Loading bool
	Failed  bool
	Message string
	Methods []ContactCard
}

// ContactCard is one contact method. URL is trusted backend data and may
// use schemes html/template would otherwise rewrite, such as tel:.
type ContactCard struct {
	Title  string
	Label  string
	URL    template.URL
	Icon   *models.Icon
	Social bool
}

type createdItem interface {
	Created() (time.Time, bool)
}

func newListPage(status listview.Status, message, retryHref, empty string) ListPage {
	return ListPage{
		Loading:   status == listview.Loading,
		Failed:    status == listview.Failed,
		Message:   message,
		RetryHref: retryHref,
		EmptyText: empty,
	}
}

func createdOn(it createdItem) string {
	t, ok := it.Created()
	if !ok {
		return ""
	}
	return format.Date(t)
}

// StaticPage builds the content of a page without backend data
func (v *Views) StaticPage() StaticPage {
	return StaticPage{Owner: v.opts.Owner}
}

// ProjectsPage builds the projects gallery. The current URL interactions
// are carried in p so detail links keep the page state.
func (v *Views) ProjectsPage(path string, s listview.State[models.Project], p listview.Params) ListPage {
	page := newListPage(s.Status(), s.Message(), path, "No projects available. Check back later!")
	for _, pr := range s.Visible() {
		id := pr.ID
		page.Cards = append(page.Cards, Card{
			ID:         pr.ID,
			Title:      pr.Title,
			Image:      v.opts.ImageURL(pr.Image),
			Link:       pr.Link,
			Text:       pr.Description,
			DetailHref: path + p.WithExpanded(&id).Encode(),
		})
	}
	if ex := s.Expanded(); ex != nil {
		page.Overlay = &Overlay{
			Title:       ex.Title,
			Image:       v.opts.ImageURL(ex.Image),
			Link:        ex.Link,
			LinkLabel:   "Visit Project",
			Description: format.Description(ex.Description),
			CloseHref:   path + p.WithExpanded(nil).Encode(),
		}
	}
	return page
}

// TutorialsPage builds the tutorials browser: category sidebar, excerpt
// cards and the detail overlay.
func (v *Views) TutorialsPage(path string, s listview.State[models.Tutorial], p listview.Params) ListPage {
	page := newListPage(s.Status(), s.Message(), path+p.WithExpanded(nil).Encode(), "No tutorials available in this category.")
	if !s.IsReady() {
		return page
	}

	page.Categories = append(page.Categories, CategoryLink{
		Name:   "All",
		Href:   path,
		Active: s.NoneSelected(),
	})
	for _, c := range s.Categories() {
		id := c.ID
		page.Categories = append(page.Categories, CategoryLink{
			Name:   c.Name,
			Href:   path + listview.Params{}.WithCategory(&id).Encode(),
			Active: s.IsSelected(c.ID),
		})
	}

	for _, t := range s.Visible() {
		id := t.ID
		page.Cards = append(page.Cards, Card{
			ID:         t.ID,
			Title:      t.Title,
			Image:      v.opts.ImageURL(t.Image),
			Link:       t.Link,
			Excerpt:    format.Description(format.Excerpt(t.Description, format.ExcerptLength)),
			DetailHref: path + p.WithExpanded(&id).Encode(),
		})
	}

	if ex := s.Expanded(); ex != nil {
		page.Overlay = &Overlay{
			Title:       ex.Title,
			Image:       v.opts.ImageURL(ex.Image),
			Link:        ex.Link,
			LinkLabel:   "Read Tutorial",
			Description: format.Description(ex.Description),
			CloseHref:   path + p.WithExpanded(nil).Encode(),
		}
	}
	return page
}

// HTMLTutorialsPage builds the "html" slug listing. Images are used as the
// backend returns them, with a placeholder when absent.
func (v *Views) HTMLTutorialsPage(path string, s listview.State[models.Tutorial]) ListPage {
	page := newListPage(s.Status(), s.Message(), path, "No HTML tutorials available.")
	for _, t := range s.Visible() {
		img := t.Image
		if img == "" {
			img = placeholderImage
		}
		page.Cards = append(page.Cards, Card{
			ID:      t.ID,
			Title:   t.Title,
			Image:   img,
			Link:    t.Link,
			Text:    t.Description,
			Created: createdOn(t),
		})
	}
	return page
}

// ContactPage builds the contact methods page
func (v *Views) ContactPage(s listview.State[models.ContactMethod]) ContactPage {
	page := ContactPage{
		Loading: s.IsLoading(),
		Failed:  s.IsFailed(),
		Message: s.Message(),
	}
	for _, m := range s.Visible() {
		page.Methods = append(page.Methods, ContactCard{
			Title:  m.Title,
			Label:  m.TypeLabel(),
			URL:    template.URL(m.URL),
			Icon:   m.Icon(),
			Social: m.IsSocial(),
		})
	}
	return page
}
