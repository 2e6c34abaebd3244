package models

import (
	"strings"
	"time"
)

// Kind tags the concrete resource behind a ListItem
type Kind string

const (
	KindProject  Kind = "project"
	KindTutorial Kind = "tutorial"
	KindContact  Kind = "contact"
)

// ListItem is a single displayable record: a Project, a Tutorial or a
// ContactMethod.
type ListItem interface {
	ItemID() int
	Kind() Kind
	ItemTitle() string
	ItemDescription() string
	// CategoryID reports false for uncategorized items.
	CategoryID() (int, bool)
}

var (
	_ ListItem = Project{}
	_ ListItem = Tutorial{}
	_ ListItem = ContactMethod{}
)

func derefCategory(id *int) (int, bool) {
	if id == nil {
		return 0, false
	}
	return *id, true
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp accepts the date shapes the backend is known to emit.
// Unparseable values count as absent.
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
