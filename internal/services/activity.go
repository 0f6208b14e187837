package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"activityboard/internal/domain"
)

type activityService struct {
	repo         domain.ActivityRepository
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewActivityService creates an ActivityService with the given repository.
// emailService is optional; when non-nil a signup confirmation is sent
// fire-and-forget after each successful signup.
func NewActivityService(repo domain.ActivityRepository, emailService domain.EmailService, logger *slog.Logger) domain.ActivityService {
	return &activityService{
		repo:         repo,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *activityService) List(ctx context.Context) ([]*domain.Activity, error) {
	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	if activities == nil {
		activities = []*domain.Activity{}
	}
	return activities, nil
}

func (s *activityService) Signup(ctx context.Context, activity, email string) (string, error) {
	a, err := s.repo.GetByName(ctx, activity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get activity: %w", err)
	}

	if a.IsRegistered(email) {
		return "", domain.ErrAlreadyRegistered
	}
	if a.SpotsLeft() <= 0 {
		return "", domain.ErrActivityFull
	}

	if err := s.repo.Register(ctx, activity, email); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrAlreadyRegistered) || errors.Is(err, domain.ErrActivityFull) {
			return "", err
		}
		return "", fmt.Errorf("register participant: %w", err)
	}

	if s.emailService != nil {
		data := &domain.SignupConfirmationData{
			Email:    email,
			Activity: a.Name,
			Schedule: a.Schedule,
		}
		go func() {
			if err := s.emailService.SendSignupConfirmation(context.Background(), data); err != nil {
				s.logger.Warn("signup confirmation email failed", "email", email, "activity", a.Name, "err", err)
			}
		}()
	}

	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

func (s *activityService) Unregister(ctx context.Context, activity, email string) (string, error) {
	if err := s.repo.Unregister(ctx, activity, email); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNotRegistered) {
			return "", err
		}
		return "", fmt.Errorf("unregister participant: %w", err)
	}
	return fmt.Sprintf("Unregistered %s from %s", email, activity), nil
}
