package model

import "time"

const (
	GenderMale           = "male"
	GenderFemale         = "female"
	GenderOther          = "other"
	GenderPreferNotToSay = "prefer_not_to_say"
)

// PlaceholderURL marks a product link the LLM did not supply. Enrichment
// only ever overwrites links that are empty or equal to this value.
const PlaceholderURL = "https://example.com"

type Profile struct {
	ProfileID    string
	Age          int
	Gender       string
	Relationship string
}

type RecommendationRequest struct {
	Profile          Profile
	Location         string
	UpcomingEvent    string
	Interests        []string
	Context          string
	Notes            string
	Count            int
	WebSearchEnabled bool
}

type MomentsRecommendationRequest struct {
	Profile    Profile
	MomentType string
	MomentDate time.Time
	Interests  []string
	Context    string
	Count      int
}

type GeneralRecommendationItem struct {
	Title          string
	Product        string
	Category       string
	Explanation    string
	Store          string
	RelevanceScore float64
	Metadata       map[string]any
	ProductURL     string
	ProductImage   string
	ProductCost    string
}

type MomentRecommendationItem struct {
	Title          string
	Product        string
	GiftType       string
	Explanation    string
	Store          string
	RelevanceScore float64
	Metadata       map[string]any
	ProductURL     string
	ProductImage   string
	ProductCost    string
}

// Categories is an intermediate artifact of the two-stage recommendation
// pipeline. It never leaves the request that produced it.
type Categories struct {
	Categories []string
	Provider   string
}

type RecommendationResult struct {
	ProfileID       string
	Recommendations []GeneralRecommendationItem
	Degraded        bool
	GeneratedAt     time.Time
	Provider        string
}

type MomentsRecommendationResult struct {
	ProfileID       string
	MilestoneEvent  string
	EventDate       time.Time
	Recommendations []MomentRecommendationItem
	Degraded        bool
	GeneratedAt     time.Time
	Provider        string
}
