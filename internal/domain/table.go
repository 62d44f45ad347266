package domain

import "fmt"

// TableShape is the physical layout of a table.
type TableShape string

const (
	ShapeRound       TableShape = "Round"
	ShapeRectangular TableShape = "Rectangular"
)

// Table is a seating table. Guests reference it by id; it owns no guests.
// swagger:model Table
type Table struct {
	ID       string     `json:"id"`
	EventID  string     `json:"weddingId"`
	Name     string     `json:"name"`
	Capacity int        `json:"capacity"`
	Shape    TableShape `json:"shape"`
}

func (t Table) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: table id is required", ErrInvalidInput)
	}
	if t.Name == "" {
		return fmt.Errorf("%w: table name is required", ErrInvalidInput)
	}
	if t.Capacity <= 0 {
		return fmt.Errorf("%w: table capacity must be positive", ErrInvalidInput)
	}
	if t.Shape != "" && t.Shape != ShapeRound && t.Shape != ShapeRectangular {
		return fmt.Errorf("%w: unknown table shape %q", ErrInvalidInput, t.Shape)
	}
	return nil
}
