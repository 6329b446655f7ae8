package analytics

import "github.com/LifeofNabin/study-guardian-backend/internal/models"

// PageTime sums seconds spent per page over page_turn/page_change
// interactions. The number of distinct pages visited is len(result).
func PageTime(interactions []models.Interaction) map[string]float64 {
	pages := make(map[string]float64)
	for _, in := range interactions {
		if in.Type != models.InteractionPageTurn && in.Type != models.InteractionPageChange {
			continue
		}
		if in.Page == "" {
			continue
		}
		pages[in.Page] += in.TimeSpent
	}
	return pages
}

// CountHighlights counts highlight interactions in a session's event log.
func CountHighlights(interactions []models.Interaction) int {
	count := 0
	for _, in := range interactions {
		if in.Type == models.InteractionHighlight {
			count++
		}
	}
	return count
}
