package analytics

import (
	"testing"

	"github.com/LifeofNabin/study-guardian-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPageTime(t *testing.T) {
	interactions := []models.Interaction{
		{Type: models.InteractionPageTurn, Page: "12", TimeSpent: 30},
		{Type: models.InteractionPageChange, Page: "13", TimeSpent: 45},
		{Type: models.InteractionPageTurn, Page: "12", TimeSpent: 15},
		{Type: models.InteractionHighlight, Page: "12", TimeSpent: 99}, // not a page event
		{Type: models.InteractionPageTurn, Page: "", TimeSpent: 10},   // no page, dropped
	}

	pages := PageTime(interactions)

	assert.Len(t, pages, 2)
	assert.InDelta(t, 45, pages["12"], 0.001)
	assert.InDelta(t, 45, pages["13"], 0.001)
}

func TestPageTimeEmpty(t *testing.T) {
	assert.Empty(t, PageTime(nil))
}

func TestCountHighlights(t *testing.T) {
	interactions := []models.Interaction{
		{Type: models.InteractionHighlight},
		{Type: models.InteractionPageTurn},
		{Type: models.InteractionHighlight},
		{Type: models.InteractionNote},
	}

	assert.Equal(t, 2, CountHighlights(interactions))
	assert.Equal(t, 0, CountHighlights(nil))
}
