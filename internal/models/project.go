package models

import "time"

// Project represents a portfolio project as served by the backend
type Project struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Link        string `json:"link,omitempty"`
	Category    *int   `json:"category_id,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// ItemID returns the project identifier
func (p Project) ItemID() int { return p.ID }

// Kind returns KindProject
func (p Project) Kind() Kind { return KindProject }

// ItemTitle returns the project title
func (p Project) ItemTitle() string { return p.Title }

// ItemDescription returns the project description
func (p Project) ItemDescription() string { return p.Description }

// CategoryID returns the project's category, if it has one
func (p Project) CategoryID() (int, bool) { return derefCategory(p.Category) }

// Created parses created_at
func (p Project) Created() (time.Time, bool) { return parseTimestamp(p.CreatedAt) }
