package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/allloveconcierge/tlc-recommendation-service/internal/model"
)

// Suggested retailers bias the LLM toward UK stores without constraining it.
var suggestedUKStores = []string{
	"thortful.com",
	"prezzybox.com",
	"funkypigeon.com",
	"notonthehighstreet.com",
	"virginexperiencedays.co.uk",
}

func categoryDeterminationPrompt(req model.RecommendationRequest) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are a gift recommendation expert. Based on the provided recipient information, identify %d suitable gift categories.\n\n", req.Count)
	sb.WriteString("Recipient Information:\n")
	fmt.Fprintf(&sb, "- ID: %s\n", req.Profile.ProfileID)
	fmt.Fprintf(&sb, "- Age: %d\n", req.Profile.Age)
	if req.Profile.Gender != "" {
		fmt.Fprintf(&sb, "- Gender: %s\n", req.Profile.Gender)
	}
	fmt.Fprintf(&sb, "- Location: %s\n", req.Location)
	fmt.Fprintf(&sb, "- Interests: %s\n", strings.Join(req.Interests, ", "))
	fmt.Fprintf(&sb, "- Upcoming Event: %s\n", req.UpcomingEvent)
	fmt.Fprintf(&sb, "- Relationship: %s\n", req.Profile.Relationship)
	if req.Context != "" {
		fmt.Fprintf(&sb, "- Additional Context: %s\n", req.Context)
	}

	sb.WriteString(`
Return the categories as a JSON array:
["Category1", "Category2", "Category3"]

Ensure the categories are tailored to the recipient's profile and aligned with their interests and events.`)

	return sb.String()
}

func generalRecommendationPrompt(req model.RecommendationRequest, categories []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are a gift recommendation expert. Using the categories: %s, suggest %d unique gifts or experiences from UK-based brands.\n\n", strings.Join(categories, ", "), req.Count)

	sb.WriteString(`Your suggestions should:
1. Be relevant to the recipient's profile and interests.
2. Include only the base domain for each store (e.g., 'thortful.com' not 'thortful.com/search?q=category')
3. Provide reasons for suitability.
4. Feel free to recommend other unique and interesting UK-based stores beyond the examples provided.
`)
	if req.Notes != "" {
		fmt.Fprintf(&sb, "\nNotes from the gift giver: %s\n", req.Notes)
	}
	if req.Context != "" {
		fmt.Fprintf(&sb, "\nAdditional context: %s\n", req.Context)
	}

	fmt.Fprintf(&sb, `
Use the following JSON format for your response:

{
  "profile_id": "%s",
  "recommendations": [
    {
      "title": "Short gift title",
      "product": "Gift/Experience Name",
      "type": "product",
      "category": "Gift/Experience Category",
      "explanation": "Why this gift/experience is suitable",
      "store": "thortful.com",
      "relevance_score": 0.9,
      "metadata": {"price_range": "£20-£40", "shipping": "UK-wide"}
    },
    ...
  ]
}

Note:
- Suggested UK stores include (but are not limited to):
`, req.Profile.ProfileID)
	for _, store := range suggestedUKStores {
		fmt.Fprintf(&sb, "  - %s\n", store)
	}
	sb.WriteString(`- Feel encouraged to suggest other cool, unique UK-based stores that match the gift categories and recipient's interests

Present only the JSON response - no additional text or commentary.`)

	return sb.String()
}

func momentRecommendationPrompt(req model.MomentsRecommendationRequest, now time.Time) string {
	var sb strings.Builder

	daysUntil := int(req.MomentDate.Sub(now).Hours() / 24)

	sb.WriteString("You are a gift recommendation specialist who focuses EXCLUSIVELY on milestone moments. Your expertise is creating deeply meaningful, occasion-specific gifts that commemorate life's significant moments.\n\n")
	sb.WriteString("Recipient & Moment Details:\n")
	fmt.Fprintf(&sb, "- ID: %s\n", req.Profile.ProfileID)
	fmt.Fprintf(&sb, "- Age: %d\n", req.Profile.Age)
	if req.Profile.Gender != "" {
		fmt.Fprintf(&sb, "- Gender: %s\n", req.Profile.Gender)
	}
	fmt.Fprintf(&sb, "- Interests: %s\n", strings.Join(req.Interests, ", "))
	fmt.Fprintf(&sb, "- Relationship to Gifter: %s\n", req.Profile.Relationship)
	fmt.Fprintf(&sb, "- MILESTONE EVENT: %s\n", req.MomentType)
	fmt.Fprintf(&sb, "- EVENT DATE: %s\n", req.MomentDate.Format("2006-01-02"))
	fmt.Fprintf(&sb, "- Days Until Event: %d\n", daysUntil)
	if req.Context != "" {
		fmt.Fprintf(&sb, "- Additional Context: %s\n", req.Context)
	}

	fmt.Fprintf(&sb, "\nYour task: Create %d EXTRAORDINARY gift recommendations that will create a LASTING MEMORY of this %s.\n", req.Count, req.MomentType)

	sb.WriteString(`
Provide recommendations in these categories:
- SYMBOLIC KEEPSAKE: A physical item that symbolizes this milestone
- EXPERIENTIAL MILESTONE MARKER: An experience that commemorates this achievement
- TRADITIONAL MILESTONE GIFT: Something following cultural traditions for this milestone in the UK
- PERSONALIZED COMMEMORATION: A highly customized item marking this specific achievement
- FUTURE-FOCUSED MILESTONE GIFT: Something that grows in meaning or value over time

Consider ritual and tradition (traditional gifts for this milestone in UK culture), transformational gifts that help the recipient transition to their new stage, personalization options such as engravings with milestone dates, and time-specific elements such as time capsules or growth-over-time gifts.
`)

	fmt.Fprintf(&sb, `
Use this JSON format:

{
  "profile_id": "%s",
  "milestone_event": "%s",
  "event_date": "%s",
  "milestone_recommendations": [
    {
      "title": "Short gift title",
      "product": "Name of the milestone gift",
      "gift_type": "SYMBOLIC KEEPSAKE/EXPERIENTIAL MILESTONE MARKER/TRADITIONAL MILESTONE GIFT/PERSONALIZED COMMEMORATION/FUTURE-FOCUSED MILESTONE GIFT",
      "explanation": "Why this gift has special significance for this specific life milestone",
      "store": "Specific UK retailer or artisan who specializes in milestone gifts",
      "relevance_score": 0.9
    },
    ...
  ]
}

Focus only on MILESTONE-MARKING gifts that would be inappropriate for everyday occasions. Present only the JSON response - no additional text or commentary.`,
		req.Profile.ProfileID, req.MomentType, req.MomentDate.Format("2006-01-02"))

	return sb.String()
}

func summarizationPrompt(req model.SummarizationRequest) string {
	var formatInstructions string
	switch req.Format {
	case model.FormatBulletPoints:
		formatInstructions = "Format the summary as bullet points."
	case model.FormatKeyPoints:
		formatInstructions = "Format the summary as a list of key points."
	default:
		formatInstructions = "Format the summary as a cohesive paragraph."
	}

	return fmt.Sprintf(`Your task is to create a concise summary of the following text.
The summary should be approximately %d tokens or less.
%s

TEXT TO SUMMARIZE:
%s

SUMMARY:`, req.MaxLength, formatInstructions, req.Text)
}
