package calculator

import "github.com/mmynk/costshare/internal/models"

// FamilyShare is one family's portion of a single expense.
type FamilyShare struct {
	FamilyName string
	Share      float64
}

// ExpenseBreakdown splits a single expense over all families.
type ExpenseBreakdown struct {
	ExpenseID    string
	Item         string
	PaidBy       string // Denormalized payer name stored on the expense
	TotalAmount  float64
	FamilyShares map[string]FamilyShare
}

// ExpenseBreakdowns computes, for every expense in input order, what each
// family's share of that expense is: amount / totalPeople * members.
// With zero people no breakdown is meaningful and an empty slice is returned.
func ExpenseBreakdowns(families []models.Family, expenses []models.Expense, totalPeople int) []ExpenseBreakdown {
	if totalPeople == 0 {
		return []ExpenseBreakdown{}
	}

	breakdowns := make([]ExpenseBreakdown, len(expenses))
	for i, e := range expenses {
		amount := amountOf(e)
		perPerson := amount / float64(totalPeople)

		shares := make(map[string]FamilyShare, len(families))
		for _, f := range families {
			shares[f.ID] = FamilyShare{
				FamilyName: f.Name,
				Share:      perPerson * float64(f.Members),
			}
		}

		breakdowns[i] = ExpenseBreakdown{
			ExpenseID:    e.ID,
			Item:         e.Item,
			PaidBy:       e.FamilyName,
			TotalAmount:  amount,
			FamilyShares: shares,
		}
	}
	return breakdowns
}
