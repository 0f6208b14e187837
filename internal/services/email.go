package services

import (
	"context"
	"fmt"

	"activityboard/internal/domain"
)

type emailService struct {
	mailer domain.Mailer
}

// NewEmailService returns an EmailService that uses the given Mailer.
func NewEmailService(mailer domain.Mailer) domain.EmailService {
	return &emailService{mailer: mailer}
}

// SendSignupConfirmation sends a plain-text confirmation for a signup.
func (s *emailService) SendSignupConfirmation(ctx context.Context, data *domain.SignupConfirmationData) error {
	if data == nil {
		return fmt.Errorf("signup confirmation data is nil")
	}
	subject := fmt.Sprintf("You're signed up for %s", data.Activity)
	text := fmt.Sprintf("You have been signed up for %s.\nSchedule: %s\n", data.Activity, data.Schedule)
	if err := s.mailer.Send(data.Email, subject, "", text); err != nil {
		return fmt.Errorf("failed to send signup confirmation: %w", err)
	}
	return nil
}
