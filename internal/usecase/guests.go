package usecase

import (
	"strings"

	"weddingplanner/internal/domain"
)

// NextRSVPStatus is the quick-toggle cycle: Accepted -> Declined -> Invited -> Accepted.
// Maybe also moves to Accepted. Suggested is returned unchanged; suggestions are approved instead.
func NextRSVPStatus(s domain.RSVPStatus) domain.RSVPStatus {
	switch s {
	case domain.RSVPSuggested:
		return s
	case domain.RSVPAccepted:
		return domain.RSVPDeclined
	case domain.RSVPDeclined:
		return domain.RSVPInvited
	default:
		return domain.RSVPAccepted
	}
}

// FilterGuests applies the guest list tab, search, status and village filters.
// The suggestions tab only honours the search term.
func FilterGuests(guests []domain.Guest, f domain.GuestFilter) []domain.Guest {
	out := []domain.Guest{}
	for _, g := range guests {
		suggestion := g.IsSuggestion()
		if f.Tab == domain.TabSuggestions {
			if suggestion && matchesSearch(g, f.Search) {
				out = append(out, g)
			}
			continue
		}
		if suggestion || !matchesSearch(g, f.Search) {
			continue
		}
		if f.Status != "" && g.RSVPStatus != f.Status {
			continue
		}
		if f.Village != "" && g.Village != f.Village {
			continue
		}
		out = append(out, g)
	}
	return out
}

func matchesSearch(g domain.Guest, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(g.FullName), strings.ToLower(term)) {
		return true
	}
	return g.Phone != "" && strings.Contains(g.Phone, term)
}

// Villages lists distinct non-empty villages in order of first appearance.
func Villages(guests []domain.Guest) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, g := range guests {
		if g.Village == "" || seen[g.Village] {
			continue
		}
		seen[g.Village] = true
		out = append(out, g.Village)
	}
	return out
}

// SearchGuests matches guest names case-insensitively, as the check-in desk does.
func SearchGuests(guests []domain.Guest, term string) []domain.Guest {
	out := []domain.Guest{}
	needle := strings.ToLower(term)
	for _, g := range guests {
		if strings.Contains(strings.ToLower(g.FullName), needle) {
			out = append(out, g)
		}
	}
	return out
}

// SummarizeCheckIn counts checked-in guest records against the rest.
func SummarizeCheckIn(guests []domain.Guest) domain.CheckInSummary {
	in := 0
	for _, g := range guests {
		if g.CheckedIn {
			in++
		}
	}
	return domain.CheckInSummary{CheckedIn: in, Remaining: len(guests) - in}
}
