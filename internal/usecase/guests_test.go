package usecase

import (
	"testing"

	"weddingplanner/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNextRSVPStatus(t *testing.T) {
	tests := []struct {
		in   domain.RSVPStatus
		want domain.RSVPStatus
	}{
		{domain.RSVPAccepted, domain.RSVPDeclined},
		{domain.RSVPDeclined, domain.RSVPInvited},
		{domain.RSVPInvited, domain.RSVPAccepted},
		{domain.RSVPMaybe, domain.RSVPAccepted},
		{domain.RSVPSuggested, domain.RSVPSuggested},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, NextRSVPStatus(tt.in))
		})
	}
}

func ids(guests []domain.Guest) []string {
	out := []string{}
	for _, g := range guests {
		out = append(out, g.ID)
	}
	return out
}

func TestFilterGuests(t *testing.T) {
	ayesha := partyGuest("1", domain.RSVPAccepted, 0, 1, 0)
	ayesha.FullName = "Ayesha Khan"
	ayesha.Village = "Gujrat"
	ayesha.Phone = "0300-1234567"

	bilal := partyGuest("2", domain.RSVPInvited, 1, 0, 0)
	bilal.FullName = "Bilal Ahmed"
	bilal.Village = "Lahore"

	suggested := partyGuest("3", domain.RSVPSuggested, 1, 0, 0)
	suggested.FullName = "Kamran Khan"
	suggested.Village = "Gujrat"

	guests := []domain.Guest{ayesha, bilal, suggested}

	tests := []struct {
		name   string
		filter domain.GuestFilter
		want   []string
	}{
		{"main tab hides suggestions", domain.GuestFilter{}, []string{"1", "2"}},
		{"search is case insensitive", domain.GuestFilter{Search: "khan"}, []string{"1"}},
		{"search matches phone", domain.GuestFilter{Search: "1234"}, []string{"1"}},
		{"status filter", domain.GuestFilter{Status: domain.RSVPInvited}, []string{"2"}},
		{"village filter", domain.GuestFilter{Village: "Gujrat"}, []string{"1"}},
		{"suggestions tab", domain.GuestFilter{Tab: domain.TabSuggestions}, []string{"3"}},
		{"suggestions tab ignores status", domain.GuestFilter{Tab: domain.TabSuggestions, Status: domain.RSVPAccepted, Search: "kam"}, []string{"3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterGuests(guests, tt.filter)))
		})
	}
}

func TestVillages(t *testing.T) {
	a := partyGuest("1", domain.RSVPInvited, 1, 0, 0)
	a.Village = "Sialkot"
	b := partyGuest("2", domain.RSVPInvited, 1, 0, 0)
	c := partyGuest("3", domain.RSVPInvited, 1, 0, 0)
	c.Village = "Multan"
	d := partyGuest("4", domain.RSVPInvited, 1, 0, 0)
	d.Village = "Sialkot"

	assert.Equal(t, []string{"Sialkot", "Multan"}, Villages([]domain.Guest{a, b, c, d}))
}

func TestCheckInHelpers(t *testing.T) {
	a := partyGuest("1", domain.RSVPAccepted, 1, 0, 0)
	a.FullName = "Sana Malik"
	a.CheckedIn = true
	b := partyGuest("2", domain.RSVPAccepted, 1, 0, 0)
	b.FullName = "Hamza Malik"
	c := partyGuest("3", domain.RSVPAccepted, 1, 0, 0)
	c.FullName = "Usman Tariq"
	guests := []domain.Guest{a, b, c}

	assert.Equal(t, domain.CheckInSummary{CheckedIn: 1, Remaining: 2}, SummarizeCheckIn(guests))
	assert.Equal(t, []string{"1", "2"}, ids(SearchGuests(guests, "MALIK")))
	assert.Len(t, SearchGuests(guests, ""), 3)
}
