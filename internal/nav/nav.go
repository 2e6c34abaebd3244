// Package nav builds the site header links
package nav

import "strings"

// Link is one entry of the header menu
type Link struct {
	Path   string
	Label  string
	Active bool
}

// Menu paths
const (
	Home      = "/"
	About     = "/about"
	Projects  = "/projects"
	Tutorials = "/tutorials"
	Contact   = "/contact"
)

var routes = []Link{
	{Path: Home, Label: "Home"},
	{Path: About, Label: "About"},
	{Path: Projects, Label: "Projects"},
	{Path: Tutorials, Label: "Tutorials"},
	{Path: Contact, Label: "Contact"},
}

// Build returns the header links with the one matching path marked active.
// "/" only matches itself; other links also match their sub-paths.
func Build(path string) []Link {
	links := make([]Link, len(routes))
	for i, l := range routes {
		l.Active = isActive(l.Path, path)
		links[i] = l
	}
	return links
}

func isActive(route, path string) bool {
	if route == Home {
		return path == Home
	}
	return path == route || strings.HasPrefix(path, route+"/")
}
