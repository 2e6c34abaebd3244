package listview

import (
	"net/url"
	"strconv"
)

// Query parameter names carrying user interactions between requests
const (
	ParamCategory = "category"
	ParamExpanded = "expanded"
)

// Params is the interaction state encoded in a page URL
type Params struct {
	Category *int
	Expanded *int
}

// ParseParams reads Params from a query string. Malformed values are
// treated as absent.
func ParseParams(q url.Values) Params {
	return Params{
		Category: parseID(q.Get(ParamCategory)),
		Expanded: parseID(q.Get(ParamExpanded)),
	}
}

func parseID(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// Apply replays the interactions in p onto a freshly loaded state
func (s State[T]) Apply(p Params) State[T] {
	s = s.SelectCategory(p.Category)
	if p.Expanded != nil {
		s = s.Expand(*p.Expanded)
	}
	return s
}

// WithCategory returns p filtered to category id (nil for all)
func (p Params) WithCategory(id *int) Params {
	p.Category = copyInt(id)
	return p
}

// WithExpanded returns p with item id expanded (nil to dismiss)
func (p Params) WithExpanded(id *int) Params {
	p.Expanded = copyInt(id)
	return p
}

// Encode renders p as a query string, "" when empty
func (p Params) Encode() string {
	q := url.Values{}
	if p.Category != nil {
		q.Set(ParamCategory, strconv.Itoa(*p.Category))
	}
	if p.Expanded != nil {
		q.Set(ParamExpanded, strconv.Itoa(*p.Expanded))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
