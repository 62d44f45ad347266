package usecase

import "weddingplanner/internal/domain"

// ComputeSeating partitions guests by table. Every guest lands in exactly one list: a guest
// whose table id matches no known table is treated as unseated. Tables without guests map to
// an empty list.
func ComputeSeating(guests []domain.Guest, tables []domain.Table) domain.SeatingPlan {
	plan := domain.SeatingPlan{
		Unseated: []domain.Guest{},
		ByTable:  make(map[string][]domain.Guest, len(tables)),
	}
	for _, t := range tables {
		plan.ByTable[t.ID] = []domain.Guest{}
	}
	for _, g := range guests {
		if list, ok := plan.ByTable[g.TableID]; ok && g.Seated() {
			plan.ByTable[g.TableID] = append(list, g)
			continue
		}
		plan.Unseated = append(plan.Unseated, g)
	}
	return plan
}

// Occupancy sums the party sizes of the seated guests. It is not clamped to capacity.
func Occupancy(seated []domain.Guest) int {
	total := 0
	for _, g := range seated {
		total += g.PartySize
	}
	return total
}

// ClassifyTable reports whether occupancy fills a table of the given capacity.
func ClassifyTable(occupancy, capacity int) domain.SeatStatus {
	switch {
	case occupancy >= capacity:
		return domain.SeatFull
	case float64(occupancy) >= float64(capacity)*domain.NearFullRatio:
		return domain.SeatNearFull
	default:
		return domain.SeatOpen
	}
}

// BuildSeatingView lays out the seating page in table insertion order.
func BuildSeatingView(guests []domain.Guest, tables []domain.Table) *domain.SeatingView {
	plan := ComputeSeating(guests, tables)
	view := &domain.SeatingView{
		Unseated: plan.Unseated,
		Tables:   make([]domain.TableOccupancy, 0, len(tables)),
	}
	seen := make(map[string]bool, len(tables))
	for _, t := range tables {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		seated := plan.ByTable[t.ID]
		occ := Occupancy(seated)
		view.Tables = append(view.Tables, domain.TableOccupancy{
			Table:     t,
			Guests:    seated,
			Occupancy: occ,
			Status:    ClassifyTable(occ, t.Capacity),
		})
	}
	return view
}
