package models

import "time"

// Tutorial represents a tutorial entry. Slug carries the free-text category
// some backends send alongside category_id (e.g. "html").
type Tutorial struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Link        string `json:"link,omitempty"`
	Category    *int   `json:"category_id,omitempty"`
	Slug        string `json:"category,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// ItemID returns the tutorial identifier
func (t Tutorial) ItemID() int { return t.ID }

// Kind returns KindTutorial
func (t Tutorial) Kind() Kind { return KindTutorial }

// ItemTitle returns the tutorial title
func (t Tutorial) ItemTitle() string { return t.Title }

// ItemDescription returns the tutorial description
func (t Tutorial) ItemDescription() string { return t.Description }

// CategoryID returns the tutorial's category, if it has one
func (t Tutorial) CategoryID() (int, bool) { return derefCategory(t.Category) }

// Created parses created_at
func (t Tutorial) Created() (time.Time, bool) { return parseTimestamp(t.CreatedAt) }

// Category is a named grouping used to filter tutorials
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
