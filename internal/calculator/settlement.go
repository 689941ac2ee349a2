package calculator

import (
	"math"
	"sort"

	"github.com/mmynk/costshare/internal/models"
)

// UnknownFamily is the display name used when an expense references a family
// that no longer exists.
const UnknownFamily = "unknown family"

// SettledTolerance is the absolute balance below which a family counts as
// settled. Display rounds to whole currency units, so anything smaller would
// render as zero anyway.
const SettledTolerance = 0.5

// Settlement is the net financial position of one family after all expenses.
type Settlement struct {
	FamilyID     string
	FamilyName   string
	Members      int
	ShouldPay    float64
	ActuallyPaid float64
	Balance      float64 // Positive = overpaid (owed money), Negative = underpaid (owes money)
}

// BalanceStatus classifies a settlement balance.
type BalanceStatus int

const (
	StatusSettled BalanceStatus = iota
	StatusCreditor
	StatusDebtor
)

func (s BalanceStatus) String() string {
	switch s {
	case StatusCreditor:
		return "creditor"
	case StatusDebtor:
		return "debtor"
	default:
		return "settled"
	}
}

// Status classifies a balance using SettledTolerance.
func Status(balance float64) BalanceStatus {
	switch {
	case balance >= SettledTolerance:
		return StatusCreditor
	case balance <= -SettledTolerance:
		return StatusDebtor
	default:
		return StatusSettled
	}
}

// Instruction tells one debtor how much to pay and lists the families it may
// pay to. It is informational only: every creditor is listed as a candidate
// and no debtor-to-creditor matching is attempted.
type Instruction struct {
	DebtorID  string
	Debtor    string
	Amount    float64
	Creditors []string
}

// UnassignedPayment is money paid under a family ID that matches no family in
// the snapshot, typically because the family was deleted after paying.
type UnassignedPayment struct {
	FamilyID string
	Amount   float64
}

// FamilyShares computes what each family should pay: perPersonCost times its
// member count.
func FamilyShares(families []models.Family, perPersonCost float64) map[string]float64 {
	shares := make(map[string]float64, len(families))
	for _, f := range families {
		shares[f.ID] = perPersonCost * float64(f.Members)
	}
	return shares
}

// FamilyPayments sums what each family actually paid. Families without
// expenses are absent from the map; payments under unknown IDs are kept under
// that ID.
func FamilyPayments(expenses []models.Expense) map[string]float64 {
	payments := make(map[string]float64)
	for _, e := range expenses {
		payments[e.FamilyID] += amountOf(e)
	}
	return payments
}

// Settlements builds one Settlement per family, in the order of families.
//
// Algorithm:
// - ShouldPay comes from shares, ActuallyPaid from payments (missing = 0)
// - Balance = ActuallyPaid - ShouldPay
func Settlements(families []models.Family, shares, payments map[string]float64) []Settlement {
	settlements := make([]Settlement, len(families))
	for i, f := range families {
		shouldPay := shares[f.ID]
		actuallyPaid := payments[f.ID]
		settlements[i] = Settlement{
			FamilyID:     f.ID,
			FamilyName:   f.Name,
			Members:      f.Members,
			ShouldPay:    shouldPay,
			ActuallyPaid: actuallyPaid,
			Balance:      actuallyPaid - shouldPay,
		}
	}
	return settlements
}

// Instructions lists, for every debtor in settlement order, all current
// creditors it could pay. Any negative balance is a debt and any positive
// one a credit; SettledTolerance only affects the Status label. Debtors are
// skipped when nobody is a creditor.
func Instructions(settlements []Settlement) []Instruction {
	var creditors []string
	for _, s := range settlements {
		if s.Balance > 0 {
			creditors = append(creditors, s.FamilyName)
		}
	}
	if len(creditors) == 0 {
		return nil
	}

	var instructions []Instruction
	for _, s := range settlements {
		if s.Balance >= 0 {
			continue
		}
		instructions = append(instructions, Instruction{
			DebtorID:  s.FamilyID,
			Debtor:    s.FamilyName,
			Amount:    math.Abs(s.Balance),
			Creditors: creditors,
		})
	}
	return instructions
}

// UnassignedPayments returns the payments whose family ID matches no family,
// sorted by ID.
func UnassignedPayments(families []models.Family, payments map[string]float64) []UnassignedPayment {
	known := make(map[string]bool, len(families))
	for _, f := range families {
		known[f.ID] = true
	}

	var unassigned []UnassignedPayment
	for id, amount := range payments {
		if known[id] {
			continue
		}
		unassigned = append(unassigned, UnassignedPayment{FamilyID: id, Amount: amount})
	}
	sort.Slice(unassigned, func(i, j int) bool {
		return unassigned[i].FamilyID < unassigned[j].FamilyID
	})
	return unassigned
}

// ResolveFamilyName looks up the current name of a family, falling back to
// UnknownFamily.
func ResolveFamilyName(families []models.Family, id string) string {
	for _, f := range families {
		if f.ID == id {
			return f.Name
		}
	}
	return UnknownFamily
}
