package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// SignupConfirmationData holds data for the signup confirmation email.
type SignupConfirmationData struct {
	Email    string
	Activity string
	Schedule string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendSignupConfirmation(ctx context.Context, data *SignupConfirmationData) error
}
