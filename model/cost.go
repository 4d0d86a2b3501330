package model

import "fmt"

// CostEstimate is an approximate monthly cost for an orphaned resource.
// Estimates come from a static table, not the live pricing API, so identical
// inputs always produce identical estimates.
type CostEstimate struct {
	Monthly  float64
	Currency string // "USD/month"
	Caveat   string // e.g. "NIC is free but holds a billed Public IP"
}

// Display formats the amount the way the result table and exports show it.
func (c CostEstimate) Display() string {
	return FormatCost(c.Monthly)
}

// FormatCost renders a monthly USD amount: "$0", "$3.65", "$146", "$2,944".
func FormatCost(amount float64) string {
	switch {
	case amount == 0:
		return "$0"
	case amount >= 1000:
		s := fmt.Sprintf("%.0f", amount)
		// Insert thousands separators right to left.
		var out []byte
		for i, d := range []byte(s) {
			if i > 0 && (len(s)-i)%3 == 0 {
				out = append(out, ',')
			}
			out = append(out, d)
		}
		return "$" + string(out)
	case amount >= 100:
		return fmt.Sprintf("$%.0f", amount)
	default:
		return fmt.Sprintf("$%.2f", amount)
	}
}

// CostInfo contains actual (billed) cost data for a time period, grouped by
// service name. Used for the month-to-date context shown next to estimates.
type CostInfo struct {
	Start     string
	End       string
	CostGroup map[string]ServiceCost
}

// ServiceCost represents billed cost for a single Azure service.
type ServiceCost struct {
	Name   string
	Amount float64
	Unit   string
}
