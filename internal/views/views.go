// Package views renders the site's HTML pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"vicheka.dev/internal/nav"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Pages rendered inside the base layout
const (
	PageHome          = "home"
	PageAbout         = "about"
	PageProjects      = "projects"
	PageTutorials     = "tutorials"
	PageHTMLTutorials = "html_tutorials"
	PageContact       = "contact"
	PageNotFound      = "notfound"
)

var pages = []string{
	PageHome, PageAbout, PageProjects, PageTutorials,
	PageHTMLTutorials, PageContact, PageNotFound,
}

// Options configures Views
type Options struct {
	SiteTitle string
	Owner     string
	// ImageURL resolves backend image references; nil leaves them as is
	ImageURL func(string) string
	// Now is the clock used for the footer year; nil means time.Now
	Now func() time.Time
}

// Views holds the parsed page templates
type Views struct {
	opts  Options
	pages map[string]*template.Template
}

// Layout is the data shared by every page
type Layout struct {
	Title   string
	Site    string
	Owner   string
	Path    string
	Nav     []nav.Link
	Year    int
	Content any
}

// New parses every page template against the shared base layout
func New(opts Options) (*Views, error) {
	if opts.ImageURL == nil {
		opts.ImageURL = func(s string) string { return s }
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	base, err := template.New("root").ParseFS(templateFS, "templates/base.tmpl", "templates/partials.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing base templates: %w", err)
	}

	v := &Views{opts: opts, pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning base for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".tmpl"); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

// Static returns the embedded stylesheet tree, rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("views: embedded static dir missing: " + err.Error())
	}
	return sub
}

// Layout builds the page chrome for path
func (v *Views) Layout(title, path string, content any) Layout {
	return Layout{
		Title:   title,
		Site:    v.opts.SiteTitle,
		Owner:   v.opts.Owner,
		Path:    path,
		Nav:     nav.Build(path),
		Year:    v.opts.Now().Year(),
		Content: content,
	}
}

// Render writes page inside the base layout with the given status. The
// page is rendered to a buffer first so a template error never leaves a
// half-written response.
func (v *Views) Render(w http.ResponseWriter, status int, page string, data Layout) error {
	return v.execute(w, status, page, "base", data)
}

// Fragment writes only the named template of page, for HTMX swaps
func (v *Views) Fragment(w http.ResponseWriter, page, name string, data any) error {
	return v.execute(w, http.StatusOK, page, name, data)
}

func (v *Views) execute(w http.ResponseWriter, status int, page, name string, data any) error {
	t, ok := v.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("executing %s/%s: %w", page, name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
