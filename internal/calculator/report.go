package calculator

import "github.com/mmynk/costshare/internal/models"

// Report is the result of one full settlement computation.
type Report struct {
	TotalExpenses float64
	TotalPeople   int
	PerPersonCost float64
	Settlements   []Settlement
	Breakdowns    []ExpenseBreakdown
	Instructions  []Instruction
	Unassigned    []UnassignedPayment
}

// Compute runs the whole allocation pipeline over a snapshot.
func Compute(snapshot models.Snapshot) Report {
	totalExpenses := TotalExpenses(snapshot.Expenses)
	totalPeople := TotalPeople(snapshot.Families)
	perPerson := PerPersonCost(totalExpenses, totalPeople)

	shares := FamilyShares(snapshot.Families, perPerson)
	payments := FamilyPayments(snapshot.Expenses)
	settlements := Settlements(snapshot.Families, shares, payments)

	return Report{
		TotalExpenses: totalExpenses,
		TotalPeople:   totalPeople,
		PerPersonCost: perPerson,
		Settlements:   settlements,
		Breakdowns:    ExpenseBreakdowns(snapshot.Families, snapshot.Expenses, totalPeople),
		Instructions:  Instructions(settlements),
		Unassigned:    UnassignedPayments(snapshot.Families, payments),
	}
}

// UnassignedTotal sums the amounts paid under unknown family IDs.
func (r Report) UnassignedTotal() float64 {
	total := 0.0
	for _, u := range r.Unassigned {
		total += u.Amount
	}
	return total
}
