package domain

import "fmt"

// VendorCategory groups vendors for the budget chart.
type VendorCategory string

const (
	CategoryVenue    VendorCategory = "Venue"
	CategoryCatering VendorCategory = "Catering"
	CategoryPhoto    VendorCategory = "Photo"
	CategoryMusic    VendorCategory = "Music"
	CategoryDecor    VendorCategory = "Decor"
	CategoryOther    VendorCategory = "Other"
)

func (c VendorCategory) Valid() bool {
	switch c {
	case CategoryVenue, CategoryCatering, CategoryPhoto, CategoryMusic, CategoryDecor, CategoryOther:
		return true
	}
	return false
}

// VendorStatus is the contract state of a vendor.
type VendorStatus string

const (
	VendorDraft  VendorStatus = "Draft"
	VendorSigned VendorStatus = "Signed"
	VendorPaid   VendorStatus = "Paid"
)

func (s VendorStatus) Valid() bool {
	switch s {
	case VendorDraft, VendorSigned, VendorPaid:
		return true
	}
	return false
}

// Vendor is a contracted supplier. Paid may exceed Cost.
// swagger:model Vendor
type Vendor struct {
	ID          string         `json:"id"`
	EventID     string         `json:"weddingId"`
	Name        string         `json:"name"`
	Category    VendorCategory `json:"category"`
	Status      VendorStatus   `json:"status"`
	Cost        float64        `json:"cost"`
	Paid        float64        `json:"paid"`
	DueDate     string         `json:"dueDate"`
	ContactName string         `json:"contactName,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	Email       string         `json:"email,omitempty"`
}

// Balance is cost minus paid. Overpayment yields a negative balance.
func (v Vendor) Balance() float64 {
	return v.Cost - v.Paid
}

// ContactOrName returns the contact person if set, otherwise the vendor name.
func (v Vendor) ContactOrName() string {
	if v.ContactName != "" {
		return v.ContactName
	}
	return v.Name
}

func (v Vendor) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("%w: vendor id is required", ErrInvalidInput)
	}
	if v.Name == "" {
		return fmt.Errorf("%w: vendor name is required", ErrInvalidInput)
	}
	if v.Cost < 0 || v.Paid < 0 {
		return fmt.Errorf("%w: cost and paid must be non-negative", ErrInvalidInput)
	}
	if v.Category != "" && !v.Category.Valid() {
		return fmt.Errorf("%w: unknown vendor category %q", ErrInvalidInput, v.Category)
	}
	if v.Status != "" && !v.Status.Valid() {
		return fmt.Errorf("%w: unknown vendor status %q", ErrInvalidInput, v.Status)
	}
	return nil
}

// VendorPatch holds the fields of a partial vendor update.
type VendorPatch struct {
	Name        *string         `json:"name,omitempty"`
	Category    *VendorCategory `json:"category,omitempty"`
	Status      *VendorStatus   `json:"status,omitempty"`
	Cost        *float64        `json:"cost,omitempty"`
	Paid        *float64        `json:"paid,omitempty"`
	DueDate     *string         `json:"dueDate,omitempty"`
	ContactName *string         `json:"contactName,omitempty"`
	Phone       *string         `json:"phone,omitempty"`
	Email       *string         `json:"email,omitempty"`
}

func (p VendorPatch) Apply(v *Vendor) {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Category != nil {
		v.Category = *p.Category
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	if p.Cost != nil {
		v.Cost = *p.Cost
	}
	if p.Paid != nil {
		v.Paid = *p.Paid
	}
	if p.DueDate != nil {
		v.DueDate = *p.DueDate
	}
	if p.ContactName != nil {
		v.ContactName = *p.ContactName
	}
	if p.Phone != nil {
		v.Phone = *p.Phone
	}
	if p.Email != nil {
		v.Email = *p.Email
	}
}

func (p VendorPatch) Validate() error {
	if (p.Cost != nil && *p.Cost < 0) || (p.Paid != nil && *p.Paid < 0) {
		return fmt.Errorf("%w: cost and paid must be non-negative", ErrInvalidInput)
	}
	if p.Category != nil && !p.Category.Valid() {
		return fmt.Errorf("%w: unknown vendor category %q", ErrInvalidInput, *p.Category)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown vendor status %q", ErrInvalidInput, *p.Status)
	}
	return nil
}
