package services

import (
	"context"
	"fmt"
	"log/slog"

	"weddingplanner/internal/domain"
	"weddingplanner/internal/usecase"
)

type reminderService struct {
	planner   domain.PlannerService
	assistant domain.AssistantService
	mailer    domain.Mailer
	renderer  domain.EmailTemplateRenderer
	currency  string
	logger    *slog.Logger
}

// NewReminderService returns a ReminderService that drafts text with assistant and sends
// email through mailer using the "reminder" template.
func NewReminderService(
	planner domain.PlannerService,
	assistant domain.AssistantService,
	mailer domain.Mailer,
	renderer domain.EmailTemplateRenderer,
	currency string,
	logger *slog.Logger,
) domain.ReminderService {
	return &reminderService{
		planner:   planner,
		assistant: assistant,
		mailer:    mailer,
		renderer:  renderer,
		currency:  currency,
		logger:    logger,
	}
}

func (s *reminderService) DraftVendorReminder(ctx context.Context, vendorID string, lang domain.Language) (*domain.ReminderDraft, error) {
	v, err := s.planner.GetVendor(vendorID)
	if err != nil {
		return nil, err
	}
	recipient := v.ContactOrName()
	msg := s.assistant.GenerateReminderText(ctx, domain.ReminderRequest{
		Recipient: recipient,
		Kind:      domain.ReminderPayment,
		Language:  lang,
		Context:   usecase.VendorReminderContext(v, s.currency),
	})
	subject := fmt.Sprintf("Payment Reminder: %s", v.Name)
	return &domain.ReminderDraft{
		Recipient: recipient,
		Kind:      domain.ReminderPayment,
		Message:   msg,
		Links:     usecase.ReminderLinks(v.Phone, v.Email, subject, msg),
	}, nil
}

func (s *reminderService) DraftGuestReminder(ctx context.Context, guestID string, lang domain.Language) (*domain.ReminderDraft, error) {
	g, err := s.planner.GetGuest(guestID)
	if err != nil {
		return nil, err
	}
	sess, err := s.planner.Session()
	if err != nil {
		return nil, err
	}
	msg := s.assistant.GenerateReminderText(ctx, domain.ReminderRequest{
		Recipient: g.FullName,
		Kind:      domain.ReminderRSVP,
		Language:  lang,
		Context:   fmt.Sprintf("Wedding of %s, invitation for a party of %d", sess.CoupleName, g.PartySize),
	})
	subject := fmt.Sprintf("RSVP Reminder: %s", sess.CoupleName)
	return &domain.ReminderDraft{
		Recipient: g.FullName,
		Kind:      domain.ReminderRSVP,
		Message:   msg,
		Links:     usecase.ReminderLinks(g.Phone, g.Email, subject, msg),
	}, nil
}

// SendReminderEmail renders the reminder template and sends it.
func (s *reminderService) SendReminderEmail(ctx context.Context, data *domain.ReminderEmailData) error {
	if data == nil {
		return fmt.Errorf("%w: reminder email data is nil", domain.ErrInvalidInput)
	}
	if data.Email == "" || data.Message == "" {
		return fmt.Errorf("%w: email and message are required", domain.ErrInvalidInput)
	}
	subject, htmlBody, textBody, err := s.renderer.Render("reminder", data)
	if err != nil {
		return fmt.Errorf("failed to render reminder template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}
	s.logger.InfoContext(ctx, "reminder email sent", "to", data.Email, "kind", data.Kind)
	return nil
}
