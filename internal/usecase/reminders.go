package usecase

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"weddingplanner/internal/domain"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders money with thousands separators and at most three decimals, trailing
// zeros dropped: 70000.5 is "70,000.5" and -20000 is "-20,000".
func FormatAmount(amount float64) string {
	rounded := math.Round(amount*1000) / 1000
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	whole := math.Trunc(rounded)
	out := sign + amountPrinter.Sprintf("%.0f", whole)
	frac := strings.TrimRight(strconv.FormatFloat(rounded-whole, 'f', 3, 64), "0")
	if frac = strings.TrimPrefix(frac, "0."); frac != "" && frac != "0" {
		out += "." + frac
	}
	return out
}

// VendorReminderContext is the prompt context for a payment reminder.
func VendorReminderContext(v domain.Vendor, currency string) string {
	return fmt.Sprintf("Balance due: %s %s, Due Date: %s", currency, FormatAmount(v.Balance()), v.DueDate)
}

// encodeComponent escapes s the way browsers encode a URI component: spaces become %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ReminderLink builds the deep link that opens a reminder in the given channel.
// WhatsApp links keep only the digits of the phone number.
func ReminderLink(method domain.ReminderMethod, phone, email, subject, msg string) (string, error) {
	body := encodeComponent(msg)
	switch method {
	case domain.MethodWhatsApp:
		return fmt.Sprintf("https://wa.me/%s?text=%s", digitsOnly(phone), body), nil
	case domain.MethodSMS:
		return fmt.Sprintf("sms:%s?body=%s", phone, body), nil
	case domain.MethodEmail:
		return fmt.Sprintf("mailto:%s?subject=%s&body=%s", email, encodeComponent(subject), body), nil
	default:
		return "", fmt.Errorf("%w: unknown reminder method %q", domain.ErrInvalidInput, method)
	}
}

// ReminderLinks returns links for every channel the contact details allow.
func ReminderLinks(phone, email, subject, msg string) map[domain.ReminderMethod]string {
	links := make(map[domain.ReminderMethod]string, 3)
	add := func(m domain.ReminderMethod) {
		if link, err := ReminderLink(m, phone, email, subject, msg); err == nil {
			links[m] = link
		}
	}
	if phone != "" {
		add(domain.MethodWhatsApp)
		add(domain.MethodSMS)
	}
	if email != "" {
		add(domain.MethodEmail)
	}
	return links
}
