package usecase

import "weddingplanner/internal/domain"

// StatsConfig carries the dashboard values that are configured rather than derived.
type StatsConfig struct {
	TotalBudget float64
	DaysToGo    int
}

// ComputeStats aggregates the dashboard summary. Suggested guests are proposals and are
// left out of every headcount.
func ComputeStats(guests []domain.Guest, vendors []domain.Vendor, tasks []domain.Task, cfg StatsConfig) domain.WeddingStats {
	stats := domain.WeddingStats{
		TotalBudget: cfg.TotalBudget,
		DaysToGo:    cfg.DaysToGo,
		TotalTasks:  len(tasks),
	}
	for _, g := range guests {
		if g.RSVPStatus == domain.RSVPAccepted {
			stats.ConfirmedGuests += g.PartySize
		}
		if g.IsSuggestion() {
			continue
		}
		stats.TotalGuests += g.PartySize
		stats.TotalMen += g.MenCount
		stats.TotalWomen += g.WomenCount
		stats.TotalChildren += g.ChildrenCount
	}
	for _, v := range vendors {
		stats.SpentBudget += v.Paid
	}
	for _, t := range tasks {
		if t.Completed {
			stats.CompletedTasks++
		}
	}
	return stats
}

// rsvpChartOrder fixes the histogram order. Invited is shown as Pending.
var rsvpChartOrder = []struct {
	status domain.RSVPStatus
	label  string
}{
	{domain.RSVPAccepted, "Accepted"},
	{domain.RSVPDeclined, "Declined"},
	{domain.RSVPInvited, "Pending"},
	{domain.RSVPMaybe, "Maybe"},
}

// RSVPChart counts guest records per status in a fixed order. Suggested is not charted.
func RSVPChart(guests []domain.Guest) []domain.RSVPBucket {
	counts := make(map[domain.RSVPStatus]int, len(rsvpChartOrder))
	for _, g := range guests {
		counts[g.RSVPStatus]++
	}
	out := make([]domain.RSVPBucket, 0, len(rsvpChartOrder))
	for _, c := range rsvpChartOrder {
		out = append(out, domain.RSVPBucket{Status: c.status, Label: c.label, Count: counts[c.status]})
	}
	return out
}

// BudgetByCategory sums vendor cost per category in order of first occurrence.
func BudgetByCategory(vendors []domain.Vendor) []domain.CategoryAmount {
	out := []domain.CategoryAmount{}
	index := make(map[domain.VendorCategory]int)
	for _, v := range vendors {
		i, ok := index[v.Category]
		if !ok {
			i = len(out)
			index[v.Category] = i
			out = append(out, domain.CategoryAmount{Category: v.Category})
		}
		out[i].Amount += v.Cost
	}
	return out
}

// BuildDashboard recomputes every overview projection from a snapshot.
func BuildDashboard(snap domain.Snapshot, cfg StatsConfig, currency string) *domain.Dashboard {
	return &domain.Dashboard{
		Stats:          ComputeStats(snap.Guests, snap.Vendors, snap.Tasks, cfg),
		RSVPChart:      RSVPChart(snap.Guests),
		BudgetChart:    BudgetByCategory(snap.Vendors),
		RecentVisitors: DedupeVisitors(snap.Visitors),
		Currency:       currency,
	}
}
