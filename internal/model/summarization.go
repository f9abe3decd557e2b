package model

import "time"

const (
	FormatParagraph    = "paragraph"
	FormatBulletPoints = "bullet_points"
	FormatKeyPoints    = "key_points"
)

type SummarizationRequest struct {
	Text      string
	MaxLength int
	Format    string
}

type SummarizationResult struct {
	Summary            string
	OriginalTextLength int
	SummaryLength      int
	GeneratedAt        time.Time
	Provider           string
}
