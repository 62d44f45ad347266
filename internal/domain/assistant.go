package domain

import "context"

// Tone is the writing style requested for an invitation.
type Tone string

const (
	ToneFormal Tone = "Formal"
	ToneCasual Tone = "Casual"
	TonePoetic Tone = "Poetic"
	ToneUrdu   Tone = "Urdu"
)

// Language is the output language of generated text.
type Language string

const (
	LanguageEnglish Language = "English"
	LanguageUrdu    Language = "Urdu"
)

// ReminderKind selects the reminder prompt.
type ReminderKind string

const (
	ReminderPayment ReminderKind = "Payment"
	ReminderRSVP    ReminderKind = "RSVP"
)

// TextGenerator is the text-generation collaborator: one prompt in, one completion out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// InviteRequest describes the invitation to draft.
type InviteRequest struct {
	CoupleNames string   `json:"coupleNames"`
	Venue       string   `json:"venue"`
	Date        string   `json:"date"`
	Tone        Tone     `json:"tone"`
	Language    Language `json:"language"`
}

// ReminderRequest describes a reminder message to draft.
type ReminderRequest struct {
	Recipient string       `json:"recipient"`
	Kind      ReminderKind `json:"kind"`
	Language  Language     `json:"language"`
	Context   string       `json:"context"`
}

// AssistantService drafts text. It never returns an error: failures become fixed fallback text.
type AssistantService interface {
	GenerateInviteText(ctx context.Context, req InviteRequest) string
	GenerateReminderText(ctx context.Context, req ReminderRequest) string
	AnalyzeBudget(ctx context.Context, amount float64, guestCount int) string
}
