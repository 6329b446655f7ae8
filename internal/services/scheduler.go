package services

import (
	"context"
	"time"

	"github.com/LifeofNabin/study-guardian-backend/internal/analytics"
	"github.com/LifeofNabin/study-guardian-backend/internal/config"
	"github.com/LifeofNabin/study-guardian-backend/internal/models"
	"github.com/LifeofNabin/study-guardian-backend/internal/repository"

	"go.uber.org/zap"
)

type Scheduler struct {
	log          *zap.Logger
	emailService *EmailService
	weights      analytics.Weights
}

func NewScheduler(log *zap.Logger, emailService *EmailService, weights analytics.Weights) *Scheduler {
	return &Scheduler{
		log:          log,
		emailService: emailService,
		weights:      weights,
	}
}

// Start runs the scheduler in a goroutine.
func (s *Scheduler) Start() {
	s.log.Info("Starting study scheduler...")
	go func() {
		// Ticker will fire on every minute.
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			<-ticker.C
			s.runReminderCheck()
			s.runStaleSessionCheck()
		}
	}()
}

func (s *Scheduler) runReminderCheck() {
	// Get current time in UTC, formatted as HH:MM
	currentTime := time.Now().UTC().Format("15:04")
	s.log.Debug("Running reminder check", zap.String("utc_time", currentTime))

	users, err := repository.GetUsersForStudyReminder(currentTime)
	if err != nil {
		s.log.Error("Failed to get users for study reminder", zap.Error(err))
		return
	}

	for _, user := range users {
		studied, err := repository.HasStudiedToday(user.ID)
		if err != nil {
			s.log.Error("Failed to check study status", zap.Uint("userID", user.ID), zap.Error(err))
			continue
		}

		if !studied {
			go s.sendReminder(user)
		}
	}
}

// runStaleSessionCheck force-ends sessions that have been active longer
// than the configured cap. It goes through the same end claim as the HTTP
// path, so a racing client request and the scheduler cannot both write a
// snapshot.
func (s *Scheduler) runStaleSessionCheck() {
	maxHours := config.Conf.Analytics.MaxSessionHours
	if maxHours <= 0 {
		return
	}
	cutoff := time.Now().UTC().Add(-time.Duration(maxHours) * time.Hour)

	stale, err := repository.GetStaleActiveSessions(context.Background(), cutoff)
	if err != nil {
		s.log.Error("Failed to find stale sessions", zap.Error(err))
		return
	}

	for _, session := range stale {
		s.closeStaleSession(session)
	}
}

func (s *Scheduler) closeStaleSession(session models.StudySession) {
	ctx := context.Background()
	endTime := time.Now().UTC()

	claimed, err := repository.ClaimSessionEnd(ctx, session.ID, session.UserID, endTime)
	if err != nil {
		s.log.Error("Failed to claim stale session end", zap.Uint("sessionID", session.ID), zap.Error(err))
		return
	}
	if !claimed {
		// A client request ended it between the query and the claim.
		return
	}

	if _, err := FinalizeSession(ctx, &session, endTime, s.weights); err != nil {
		s.log.Error("Failed to finalize stale session", zap.Uint("sessionID", session.ID), zap.Error(err))
		return
	}
	s.log.Info("Auto-closed stale session",
		zap.Uint("sessionID", session.ID),
		zap.Uint("userID", session.UserID),
		zap.Time("startTime", session.StartTime),
	)
}

func (s *Scheduler) sendReminder(user models.User) {
	s.emailService.SendReminderEmail(user)
}
