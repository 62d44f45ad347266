package domain

import "fmt"

// RSVPStatus is a guest's response state. Suggested marks a proposal awaiting approval.
type RSVPStatus string

const (
	RSVPInvited   RSVPStatus = "Invited"
	RSVPAccepted  RSVPStatus = "Accepted"
	RSVPDeclined  RSVPStatus = "Declined"
	RSVPMaybe     RSVPStatus = "Maybe"
	RSVPSuggested RSVPStatus = "Suggested"
)

// Valid reports whether s is a known status.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPInvited, RSVPAccepted, RSVPDeclined, RSVPMaybe, RSVPSuggested:
		return true
	}
	return false
}

// Relation categorizes a guest.
type Relation string

const (
	RelationFamily    Relation = "Family"
	RelationFriend    Relation = "Friend"
	RelationVIP       Relation = "VIP"
	RelationColleague Relation = "Colleague"
)

func (r Relation) Valid() bool {
	switch r {
	case RelationFamily, RelationFriend, RelationVIP, RelationColleague:
		return true
	}
	return false
}

// MealChoice is the guest's catering preference.
type MealChoice string

const (
	MealChicken MealChoice = "Chicken"
	MealBeef    MealChoice = "Beef"
	MealVeg     MealChoice = "Veg"
	MealKids    MealChoice = "Kids"
	MealNone    MealChoice = "None"
)

// Guest is one invitation record. PartySize is the total headcount it represents.
// JSON field names follow the spreadsheet API wire format.
// swagger:model Guest
type Guest struct {
	ID            string     `json:"id"`
	EventID       string     `json:"weddingId"`
	FullName      string     `json:"fullName"`
	Relation      Relation   `json:"relation"`
	RSVPStatus    RSVPStatus `json:"rsvpStatus"`
	PartySize     int        `json:"partySize"`
	MenCount      int        `json:"menCount"`
	WomenCount    int        `json:"womenCount"`
	ChildrenCount int        `json:"childrenCount"`
	MealChoice    MealChoice `json:"mealChoice"`
	TableID       string     `json:"tableId,omitempty"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Description   string     `json:"description,omitempty"`
	DietaryNotes  string     `json:"dietaryNotes,omitempty"`
	CheckedIn     bool       `json:"checkedIn,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	AddedBy       string     `json:"addedBy,omitempty"`
	Village       string     `json:"village,omitempty"`
}

// NewGuest returns a Guest whose PartySize is derived from the breakdown counts.
func NewGuest(id, eventID, fullName string, relation Relation, status RSVPStatus, men, women, children int) *Guest {
	return &Guest{
		ID:            id,
		EventID:       eventID,
		FullName:      fullName,
		Relation:      relation,
		RSVPStatus:    status,
		PartySize:     men + women + children,
		MenCount:      men,
		WomenCount:    women,
		ChildrenCount: children,
		MealChoice:    MealNone,
	}
}

// IsSuggestion reports whether the guest is a pending proposal rather than an invitation.
func (g Guest) IsSuggestion() bool {
	return g.RSVPStatus == RSVPSuggested
}

// Seated reports whether the guest references a table.
func (g Guest) Seated() bool {
	return g.TableID != ""
}

// Validate checks the party composition invariant.
func (g Guest) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("%w: guest id is required", ErrInvalidInput)
	}
	if g.FullName == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if g.MenCount < 0 || g.WomenCount < 0 || g.ChildrenCount < 0 {
		return fmt.Errorf("%w: party counts must be non-negative", ErrInvalidInput)
	}
	if g.PartySize != g.MenCount+g.WomenCount+g.ChildrenCount {
		return fmt.Errorf("%w: party size %d does not match breakdown %d+%d+%d",
			ErrInvalidInput, g.PartySize, g.MenCount, g.WomenCount, g.ChildrenCount)
	}
	if g.RSVPStatus != "" && !g.RSVPStatus.Valid() {
		return fmt.Errorf("%w: unknown rsvp status %q", ErrInvalidInput, g.RSVPStatus)
	}
	if g.Relation != "" && !g.Relation.Valid() {
		return fmt.Errorf("%w: unknown relation %q", ErrInvalidInput, g.Relation)
	}
	return nil
}

// GuestPatch holds the fields of a partial guest update. Nil fields are left unchanged.
// A non-nil TableID pointing at "" clears the seat.
type GuestPatch struct {
	FullName      *string     `json:"fullName,omitempty"`
	Relation      *Relation   `json:"relation,omitempty"`
	RSVPStatus    *RSVPStatus `json:"rsvpStatus,omitempty"`
	MenCount      *int        `json:"menCount,omitempty"`
	WomenCount    *int        `json:"womenCount,omitempty"`
	ChildrenCount *int        `json:"childrenCount,omitempty"`
	MealChoice    *MealChoice `json:"mealChoice,omitempty"`
	TableID       *string     `json:"tableId,omitempty"`
	Email         *string     `json:"email,omitempty"`
	Phone         *string     `json:"phone,omitempty"`
	Description   *string     `json:"description,omitempty"`
	DietaryNotes  *string     `json:"dietaryNotes,omitempty"`
	CheckedIn     *bool       `json:"checkedIn,omitempty"`
	Notes         *string     `json:"notes,omitempty"`
	Village       *string     `json:"village,omitempty"`
}

// Apply merges the patch into g. Changing any breakdown count recomputes PartySize.
func (p GuestPatch) Apply(g *Guest) {
	if p.FullName != nil {
		g.FullName = *p.FullName
	}
	if p.Relation != nil {
		g.Relation = *p.Relation
	}
	if p.RSVPStatus != nil {
		g.RSVPStatus = *p.RSVPStatus
	}
	recount := false
	if p.MenCount != nil {
		g.MenCount = *p.MenCount
		recount = true
	}
	if p.WomenCount != nil {
		g.WomenCount = *p.WomenCount
		recount = true
	}
	if p.ChildrenCount != nil {
		g.ChildrenCount = *p.ChildrenCount
		recount = true
	}
	if recount {
		g.PartySize = g.MenCount + g.WomenCount + g.ChildrenCount
	}
	if p.MealChoice != nil {
		g.MealChoice = *p.MealChoice
	}
	if p.TableID != nil {
		g.TableID = *p.TableID
	}
	if p.Email != nil {
		g.Email = *p.Email
	}
	if p.Phone != nil {
		g.Phone = *p.Phone
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.DietaryNotes != nil {
		g.DietaryNotes = *p.DietaryNotes
	}
	if p.CheckedIn != nil {
		g.CheckedIn = *p.CheckedIn
	}
	if p.Notes != nil {
		g.Notes = *p.Notes
	}
	if p.Village != nil {
		g.Village = *p.Village
	}
}

// Validate rejects negative counts and unknown enum values.
func (p GuestPatch) Validate() error {
	for _, n := range []*int{p.MenCount, p.WomenCount, p.ChildrenCount} {
		if n != nil && *n < 0 {
			return fmt.Errorf("%w: party counts must be non-negative", ErrInvalidInput)
		}
	}
	if p.RSVPStatus != nil && !p.RSVPStatus.Valid() {
		return fmt.Errorf("%w: unknown rsvp status %q", ErrInvalidInput, *p.RSVPStatus)
	}
	if p.Relation != nil && !p.Relation.Valid() {
		return fmt.Errorf("%w: unknown relation %q", ErrInvalidInput, *p.Relation)
	}
	if p.FullName != nil && *p.FullName == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	return nil
}
