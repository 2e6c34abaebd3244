// Package listview implements the fetch-and-render list pattern shared by
// every page: a loading/error/ready state machine, client-side category
// filtering, and single-item expansion for the detail overlay.
//
// State values are immutable; every transition returns a new State.
package listview

import (
	"slices"

	"vicheka.dev/internal/models"
)

// ErrorMessage is the only failure text shown to visitors
const ErrorMessage = "Failed to load data. Please try again later."

// Status is the phase of a page's view state
type Status int

const (
	Loading Status = iota
	Failed
	Ready
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Failed:
		return "error"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// State is the view state of one list page
type State[T models.ListItem] struct {
	status     Status
	message    string
	items      []T
	categories []models.Category
	selected   *int
	expanded   *int
}

// NewState returns a state in Loading
func NewState[T models.ListItem]() State[T] {
	return State[T]{status: Loading}
}

// Resolve moves Loading to Ready with the fetched data
func (s State[T]) Resolve(items []T, categories []models.Category) State[T] {
	if s.status != Loading {
		return s
	}
	return State[T]{
		status:     Ready,
		items:      items,
		categories: categories,
	}
}

// Fail moves Loading to Failed
func (s State[T]) Fail(message string) State[T] {
	if s.status != Loading {
		return s
	}
	return State[T]{status: Failed, message: message}
}

// SelectCategory sets the category filter. Nil shows everything. The id is
// not checked against the fetched categories; an unknown id filters to an
// empty list.
func (s State[T]) SelectCategory(id *int) State[T] {
	if s.status != Ready {
		return s
	}
	s.selected = copyInt(id)
	return s
}

// Expand marks the item with the given id as the one shown in the detail
// overlay, replacing any previous one. Ids that are unknown or hidden by
// the category filter leave the state as is.
func (s State[T]) Expand(id int) State[T] {
	if s.status != Ready {
		return s
	}
	if !slices.ContainsFunc(s.Visible(), func(it T) bool { return it.ItemID() == id }) {
		return s
	}
	s.expanded = &id
	return s
}

// Dismiss closes the detail overlay
func (s State[T]) Dismiss() State[T] {
	s.expanded = nil
	return s
}

// Status returns the current phase
func (s State[T]) Status() Status { return s.status }

// IsLoading reports whether the state is Loading
func (s State[T]) IsLoading() bool { return s.status == Loading }

// IsFailed reports whether the state is Failed
func (s State[T]) IsFailed() bool { return s.status == Failed }

// IsReady reports whether the state is Ready
func (s State[T]) IsReady() bool { return s.status == Ready }

// Message returns the failure message; empty unless Failed
func (s State[T]) Message() string { return s.message }

// Items returns every fetched item in backend order
func (s State[T]) Items() []T { return s.items }

// Categories returns the fetched categories
func (s State[T]) Categories() []models.Category { return s.categories }

// Selected returns the selected category id, if any
func (s State[T]) Selected() (int, bool) {
	if s.selected == nil {
		return 0, false
	}
	return *s.selected, true
}

// SelectedID returns a copy of the selected category id or nil
func (s State[T]) SelectedID() *int { return copyInt(s.selected) }

// IsSelected reports whether category id is the active filter
func (s State[T]) IsSelected(id int) bool {
	return s.selected != nil && *s.selected == id
}

// NoneSelected reports whether the "All" filter is active
func (s State[T]) NoneSelected() bool { return s.selected == nil }

// Visible returns the items passing the category filter
func (s State[T]) Visible() []T {
	return Filter(s.items, s.selected)
}

// Expanded returns the item shown in the detail overlay, or nil. An item
// hidden by a later category change is not shown.
func (s State[T]) Expanded() *T {
	if s.expanded == nil {
		return nil
	}
	for _, it := range s.Visible() {
		if it.ItemID() == *s.expanded {
			return &it
		}
	}
	return nil
}

// Filter returns the items whose category equals category, preserving
// order. A nil category returns items unchanged.
func Filter[T models.ListItem](items []T, category *int) []T {
	if category == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if id, ok := it.CategoryID(); ok && id == *category {
			out = append(out, it)
		}
	}
	return out
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
