// Package board renders the activity list and drives signup and removal
// actions against the backend. It is the terminal counterpart of the
// original activity web page: every mutation triggers a full re-fetch and
// re-render, and user feedback goes through a single transient message slot.
package board

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"activityboard/internal/client"
	"activityboard/internal/domain"
)

// DefaultHideDelay is how long a message stays visible before auto-hiding.
const DefaultHideDelay = 5000 * time.Millisecond

// Severity tags a message as success or error feedback.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Message is the transient feedback from the last action.
type Message struct {
	Text     string
	Severity Severity
}

// API is the backend surface the board consumes.
type API interface {
	List(ctx context.Context) (map[string]domain.Activity, error)
	Signup(ctx context.Context, activity, email string) (string, error)
	Unregister(ctx context.Context, activity, email string) error
}

// Board holds the page state: the rendered activity list, the activity
// selection options, the signup form's email value, and the message slot.
// All state is rebuilt from the latest fetch; nothing is persisted.
type Board struct {
	api       API
	out       io.Writer
	logger    *slog.Logger
	tr        *Translator
	hideDelay time.Duration

	mu      sync.Mutex
	msg     *Message
	options []string
	email   string
}

// New creates a Board writing to out. tr may be nil (English labels).
// hideDelay <= 0 selects DefaultHideDelay.
func New(api API, out io.Writer, logger *slog.Logger, tr *Translator, hideDelay time.Duration) *Board {
	if tr == nil {
		tr = NewTranslator("en")
	}
	if hideDelay <= 0 {
		hideDelay = DefaultHideDelay
	}
	return &Board{
		api:       api,
		out:       out,
		logger:    logger,
		tr:        tr,
		hideDelay: hideDelay,
	}
}

// Refresh fetches the activity list and fully re-renders it, rebuilding the
// selection options. There is no diffing and no retry: on any fetch error
// the list is replaced with a static failure message.
func (b *Board) Refresh(ctx context.Context) {
	activities, err := b.api.List(ctx)
	if err != nil {
		b.logger.Error("failed to fetch activities", "err", err)
		fmt.Fprintln(b.out, b.tr.T("LoadFailed", nil))
		return
	}

	names := make([]string, 0, len(activities))
	for name := range activities {
		names = append(names, name)
	}
	sort.Strings(names)

	b.mu.Lock()
	b.options = names
	b.mu.Unlock()

	fmt.Fprintf(b.out, "=== %s ===\n", b.tr.T("Title", nil))
	for _, name := range names {
		b.renderCard(activities[name])
	}
}

func (b *Board) renderCard(a domain.Activity) {
	fmt.Fprintf(b.out, "\n%s\n", a.Name)
	fmt.Fprintf(b.out, "  %s\n", a.Description)
	fmt.Fprintf(b.out, "  %s: %s\n", b.tr.T("ScheduleLabel", nil), a.Schedule)
	// Spots left is a pass-through of backend data: it goes negative when
	// the roster is over capacity.
	fmt.Fprintf(b.out, "  %s: %d\n", b.tr.T("SpotsLeftLabel", nil), a.SpotsLeft())
	if len(a.Participants) == 0 {
		fmt.Fprintf(b.out, "  %s\n", b.tr.T("NoParticipants", nil))
		return
	}
	fmt.Fprintf(b.out, "  %s:\n", b.tr.T("ParticipantsLabel", nil))
	for _, p := range a.Participants {
		fmt.Fprintf(b.out, "    - %s\n", p)
	}
}

// SetEmail sets the signup form's email value.
func (b *Board) SetEmail(email string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.email = email
}

// Email returns the signup form's current email value.
func (b *Board) Email() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.email
}

// Options returns the activity names from the last successful refresh,
// in render order.
func (b *Board) Options() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.options))
	copy(out, b.options)
	return out
}

// Message returns the currently visible message, or nil when hidden.
func (b *Board) Message() *Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.msg == nil {
		return nil
	}
	m := *b.msg
	return &m
}

// Signup submits the signup form for the named activity using the form's
// email value. On success the backend's message is shown, the email field is
// reset, and the list is refreshed once. On rejection the backend's detail
// is shown and the list is left untouched. Auto-hide is scheduled on both
// outcomes, but not on transport failure.
func (b *Board) Signup(ctx context.Context, activity string) {
	email := b.Email()

	msg, err := b.api.Signup(ctx, activity, email)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			text := apiErr.Detail
			if text == "" {
				text = b.tr.T("SignupFailed", nil)
			}
			b.setMessage(text, SeverityError)
			b.scheduleHide()
			return
		}
		b.setMessage(b.tr.T("SignupFailed", nil), SeverityError)
		b.logger.Error("signup failed", "activity", activity, "err", err)
		return
	}

	b.setMessage(msg, SeveritySuccess)
	b.SetEmail("")
	b.Refresh(ctx)
	b.scheduleHide()
}

// Unregister removes email from the named activity's roster. On success a
// confirmation naming both is shown, the list is refreshed once, and
// auto-hide is scheduled. Rejections and transport failures show an error
// without refreshing and without scheduling auto-hide.
func (b *Board) Unregister(ctx context.Context, activity, email string) {
	err := b.api.Unregister(ctx, activity, email)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			text := apiErr.Detail
			if text == "" {
				text = b.tr.T("UnregisterFailed", nil)
			}
			b.setMessage(text, SeverityError)
			return
		}
		b.setMessage(b.tr.T("UnregisterFailed", nil), SeverityError)
		b.logger.Error("unregister failed", "activity", activity, "err", err)
		return
	}

	b.setMessage(b.tr.T("Removed", map[string]any{"Email": email, "Activity": activity}), SeveritySuccess)
	b.Refresh(ctx)
	b.scheduleHide()
}

func (b *Board) setMessage(text string, severity Severity) {
	b.mu.Lock()
	b.msg = &Message{Text: text, Severity: severity}
	b.mu.Unlock()
	fmt.Fprintf(b.out, "[%s] %s\n", severity, text)
}

// scheduleHide clears the message slot after the hide delay. A pending
// timer is not cancelled when a newer message arrives, so a stale timer can
// blank a newer message early.
func (b *Board) scheduleHide() {
	time.AfterFunc(b.hideDelay, func() {
		b.mu.Lock()
		b.msg = nil
		b.mu.Unlock()
	})
}
