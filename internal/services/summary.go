package services

import (
	"fmt"
	"strings"

	"github.com/LifeofNabin/study-guardian-backend/internal/analytics"
	"github.com/LifeofNabin/study-guardian-backend/internal/models"

	"go.uber.org/zap"
)

// SummaryService turns a session's final metrics into a short plain-text
// recap returned with the end-session response.
type SummaryService struct {
	log *zap.Logger
}

func NewSummaryService(log *zap.Logger) *SummaryService {
	return &SummaryService{log: log}
}

// Compose builds the recap text. It never fails: a session with no samples
// still gets a duration-only summary.
func (s *SummaryService) Compose(session *models.StudySession, durationSeconds int, summary analytics.Summary, highlights, pagesVisited int) string {
	minutes := durationSeconds / 60

	var b strings.Builder
	fmt.Fprintf(&b, "You studied for %d minutes", minutes)
	if session.Subject != "" {
		fmt.Fprintf(&b, " on %s", session.Subject)
	}
	b.WriteString(".")

	if summary.TotalSamples == 0 {
		b.WriteString(" No webcam data was recorded for this session.")
		s.log.Debug("Composed summary without webcam data", zap.Uint("sessionID", session.ID))
		return b.String()
	}

	fmt.Fprintf(&b, " Engagement score: %d/100, attention rate: %d%%.", summary.EngagementScore, summary.AttentionRate)
	if summary.DistractionCount > 0 {
		fmt.Fprintf(&b, " You were distracted by your phone %d time(s).", summary.DistractionCount)
	}
	if highlights > 0 {
		fmt.Fprintf(&b, " You made %d highlight(s)", highlights)
		if pagesVisited > 0 {
			fmt.Fprintf(&b, " across %d page(s)", pagesVisited)
		}
		b.WriteString(".")
	}

	switch {
	case summary.EngagementScore >= 80:
		b.WriteString(" Great focus, keep it up!")
	case summary.EngagementScore >= 50:
		b.WriteString(" Solid effort; try shorter stretches with breaks to push engagement higher.")
	default:
		b.WriteString(" Engagement was low; consider a quieter environment or a rest.")
	}

	return b.String()
}
