package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"weddingplanner/internal/domain"
	"weddingplanner/internal/metrics"
)

// Fallback texts returned when the text generator fails or returns nothing.
const (
	InviteFallback      = "Error connecting to AI service. Please check your API key."
	InviteEmptyFallback = "Could not generate invite. Please try again."
	BudgetFallback      = "Error analyzing budget."
	BudgetEmptyFallback = "Analysis unavailable."
)

// ReminderFallback is the generic reminder used when generation fails.
func ReminderFallback(recipient string, kind domain.ReminderKind) string {
	return fmt.Sprintf("Hi %s, this is a reminder regarding your %s.", recipient, kind)
}

type assistantService struct {
	gen            domain.TextGenerator
	logger         *slog.Logger
	metrics        *metrics.Metrics
	currency       string
	contextTimeout time.Duration
}

// NewAssistantService wraps gen so that callers only ever see text, never errors.
func NewAssistantService(gen domain.TextGenerator, currency string, timeout time.Duration, logger *slog.Logger, m *metrics.Metrics) domain.AssistantService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &assistantService{
		gen:            gen,
		logger:         logger,
		metrics:        m,
		currency:       currency,
		contextTimeout: timeout,
	}
}

func (s *assistantService) GenerateInviteText(ctx context.Context, req domain.InviteRequest) string {
	prompt := fmt.Sprintf(`Write a wedding invitation for %s taking place at %s on %s.
Tone: %s.
Language: %s.
Keep it under 100 words. Return ONLY the text of the invitation.`,
		req.CoupleNames, req.Venue, req.Date, req.Tone, req.Language)
	return s.generate(ctx, "invite", prompt, InviteFallback, InviteEmptyFallback)
}

func (s *assistantService) GenerateReminderText(ctx context.Context, req domain.ReminderRequest) string {
	prompt := fmt.Sprintf(`Write a short, polite, and professional %s reminder message for WhatsApp.
Recipient: %s.
Language: %s.
Context: %s.

Rules:
- If 'Payment', allow for a polite reminder about due dates or balances.
- If 'RSVP', make it warm and asking if they can make it.
- Keep it under 50 words.
- Return ONLY the message text.`,
		req.Kind, req.Recipient, req.Language, req.Context)
	fallback := ReminderFallback(req.Recipient, req.Kind)
	return s.generate(ctx, "reminder", prompt, fallback, fallback)
}

func (s *assistantService) AnalyzeBudget(ctx context.Context, amount float64, guestCount int) string {
	prompt := fmt.Sprintf(`I have a wedding budget of %s %.0f for %d guests.
Provide a very brief breakdown (3 bullet points) of suggested allocation percentages for Venue/Food, Decor, and Photography in Pakistan context.
Return plain text.`,
		s.currency, amount, guestCount)
	return s.generate(ctx, "budget", prompt, BudgetFallback, BudgetEmptyFallback)
}

// generate absorbs every failure of the text generator into onError or onEmpty.
func (s *assistantService) generate(ctx context.Context, op, prompt, onError, onEmpty string) string {
	if s.gen == nil {
		s.metrics.Assistant(op, metrics.OutcomeFallback)
		return onError
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.metrics.Assistant(op, metrics.OutcomeFallback)
		s.logger.ErrorContext(ctx, "assistant request failed", "operation", op, "err", err)
		return onError
	}
	text = strings.TrimSpace(text)
	if text == "" {
		s.metrics.Assistant(op, metrics.OutcomeFallback)
		return onEmpty
	}
	s.metrics.Assistant(op, metrics.OutcomeOK)
	return text
}
