package domain

import "context"

// ReminderMethod is the channel a reminder is sent through.
type ReminderMethod string

const (
	MethodWhatsApp ReminderMethod = "WhatsApp"
	MethodSMS      ReminderMethod = "SMS"
	MethodEmail    ReminderMethod = "Email"
)

// ReminderDraft is a generated reminder plus ready-to-open links for each channel.
// swagger:model ReminderDraft
type ReminderDraft struct {
	Recipient string                    `json:"recipient"`
	Kind      ReminderKind              `json:"kind"`
	Message   string                    `json:"message"`
	Links     map[ReminderMethod]string `json:"links"`
}

// ReminderService drafts and sends reminders for vendors and guests.
type ReminderService interface {
	DraftVendorReminder(ctx context.Context, vendorID string, lang Language) (*ReminderDraft, error)
	DraftGuestReminder(ctx context.Context, guestID string, lang Language) (*ReminderDraft, error)
	SendReminderEmail(ctx context.Context, data *ReminderEmailData) error
}
