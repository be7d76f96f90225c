// Package domain defines the types and interfaces for the analyze service
package domain

import "time"

// Platform identifies where a text sample was collected
type Platform string

// Supported platforms
const (
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
)

// AnalyzeInput is the request to score one text sample
type AnalyzeInput struct {
	Content  string   `json:"content"  validate:"required,max=50000"`
	Platform Platform `json:"platform" validate:"required,oneof=twitter instagram linkedin"`
	PostID   *string  `json:"post_id,omitempty"`
	Author   *string  `json:"author,omitempty"`
}

// Breakdown exposes how the final score was assembled
type Breakdown struct {
	LLMScore       *int     `json:"llm_score"`
	HeuristicScore int      `json:"heuristic_score"`
	Signals        []string `json:"signals"`
}

// Analysis is the scored verdict for one text
type Analysis struct {
	Score      int       `json:"score"`
	Confidence float64   `json:"confidence"`
	Label      string    `json:"label"`
	Breakdown  Breakdown `json:"breakdown"`
}

// Record is one persisted analysis row. Rows are append-only and unique
// per content hash
type Record struct {
	ID             string
	ContentHash    string
	Content        string
	Platform       string
	PostID         *string
	Author         *string
	Score          int
	Confidence     float64
	Label          string
	LLMScore       *int
	HeuristicScore int
	Signals        []string
	CreatedAt      time.Time
}
