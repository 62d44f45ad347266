package domain

// WeddingStats is the derived summary shown on the dashboard. It is never persisted.
// swagger:model WeddingStats
type WeddingStats struct {
	TotalGuests     int     `json:"totalGuests"`
	ConfirmedGuests int     `json:"confirmedGuests"`
	TotalMen        int     `json:"totalMen"`
	TotalWomen      int     `json:"totalWomen"`
	TotalChildren   int     `json:"totalChildren"`
	TotalBudget     float64 `json:"totalBudget"`
	SpentBudget     float64 `json:"spentBudget"`
	DaysToGo        int     `json:"daysToGo"`
	CompletedTasks  int     `json:"completedTasks"`
	TotalTasks      int     `json:"totalTasks"`
}

// RSVPBucket is one bar of the RSVP histogram. Count is the number of guest records, not headcount.
type RSVPBucket struct {
	Status RSVPStatus `json:"status"`
	Label  string     `json:"name"`
	Count  int        `json:"value"`
}

// CategoryAmount is the summed vendor cost of one category.
type CategoryAmount struct {
	Category VendorCategory `json:"category"`
	Amount   float64        `json:"amount"`
}

// VendorTotals sums money across all vendors.
type VendorTotals struct {
	Cost    float64 `json:"cost"`
	Paid    float64 `json:"paid"`
	Balance float64 `json:"balance"`
}

// Dashboard bundles every projection the overview page renders.
// swagger:model Dashboard
type Dashboard struct {
	Stats          WeddingStats     `json:"stats"`
	RSVPChart      []RSVPBucket     `json:"rsvpData"`
	BudgetChart    []CategoryAmount `json:"budgetData"`
	RecentVisitors []Viewer         `json:"recentVisitors"`
	Currency       string           `json:"currency"`
}
