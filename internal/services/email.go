package services

import (
	"fmt"

	"github.com/LifeofNabin/study-guardian-backend/internal/models"

	"go.uber.org/zap"
)

// EmailService is a placeholder for a real email sending service.
type EmailService struct {
	log *zap.Logger
}

func NewEmailService(log *zap.Logger) *EmailService {
	return &EmailService{log: log}
}

// SendReminderEmail simulates sending a study reminder email.
func (s *EmailService) SendReminderEmail(user models.User) {
	s.log.Info("Sending reminder email",
		zap.String("to", user.Email),
		zap.String("name", user.FirstName),
	)
	// TODO: replace with a real SMTP client and a templated HTML email.
	fmt.Printf("--- SIMULATING EMAIL ---\nTo: %s\nSubject: Time to study\nHi %s,\nThis is a friendly reminder to fit in a study session today.\n\n", user.Email, user.FirstName)
}
