package domain

// SeatStatus classifies a table's occupancy against its capacity.
type SeatStatus string

const (
	SeatOpen     SeatStatus = "open"
	SeatNearFull SeatStatus = "near_full"
	SeatFull     SeatStatus = "full"
)

// NearFullRatio is the occupancy fraction at which a table counts as near full.
const NearFullRatio = 0.8

// SeatingPlan partitions guests into unseated and per-table lists.
type SeatingPlan struct {
	Unseated []Guest           `json:"unseated"`
	ByTable  map[string][]Guest `json:"byTable"`
}

// TableOccupancy is the seating view of a single table.
type TableOccupancy struct {
	Table     Table      `json:"table"`
	Guests    []Guest    `json:"guests"`
	Occupancy int        `json:"occupancy"`
	Status    SeatStatus `json:"status"`
}

// SeatingView is the seating page projection, tables in insertion order.
// swagger:model SeatingView
type SeatingView struct {
	Unseated []Guest          `json:"unseated"`
	Tables   []TableOccupancy `json:"tables"`
}
