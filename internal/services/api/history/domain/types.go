// Package domain defines the types and interfaces for analysis history
package domain

import "time"

// ListInput pages through stored analyses, newest first
type ListInput struct {
	Limit  int     `json:"limit"  validate:"omitempty,min=1,max=100"`
	Offset int     `json:"offset" validate:"omitempty,min=0"`
	Author *string `json:"author,omitempty"`
}

// Item is one history row. Content is truncated to a preview
type Item struct {
	ID             string    `json:"id"`
	ContentPreview string    `json:"content_preview"`
	Platform       string    `json:"platform"`
	PostID         *string   `json:"post_id"`
	Author         *string   `json:"author"`
	Score          int       `json:"score"`
	Confidence     float64   `json:"confidence"`
	Label          string    `json:"label"`
	CreatedAt      time.Time `json:"created_at"`
}
