// Package calculator computes per-capita cost allocation and settlements for
// families sharing the expenses of a gathering.
//
// Every function is pure: inputs are never mutated and all derived values
// are recomputed from scratch. No rounding happens here; amounts stay exact
// floats until the currency package formats them for display.
package calculator

import (
	"math"

	"github.com/mmynk/costshare/internal/models"
)

// TotalExpenses sums the amounts of all expenses.
// Non-finite amounts count as zero so one bad record cannot poison the total.
func TotalExpenses(expenses []models.Expense) float64 {
	total := 0.0
	for _, e := range expenses {
		total += amountOf(e)
	}
	return total
}

// TotalPeople sums the member counts of all families.
func TotalPeople(families []models.Family) int {
	total := 0
	for _, f := range families {
		total += f.Members
	}
	return total
}

// PerPersonCost divides the total expenses evenly over all people.
// It returns exactly 0 when there are no people.
func PerPersonCost(totalExpenses float64, totalPeople int) float64 {
	if totalPeople == 0 {
		return 0
	}
	return totalExpenses / float64(totalPeople)
}

func amountOf(e models.Expense) float64 {
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return 0
	}
	return e.Amount
}
