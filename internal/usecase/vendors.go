package usecase

import "weddingplanner/internal/domain"

// SumVendors totals cost, paid and balance. Balances are not clamped, so overpayment
// reduces the total balance.
func SumVendors(vendors []domain.Vendor) domain.VendorTotals {
	var t domain.VendorTotals
	for _, v := range vendors {
		t.Cost += v.Cost
		t.Paid += v.Paid
	}
	t.Balance = t.Cost - t.Paid
	return t
}
