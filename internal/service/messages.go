package service

import (
	"encoding/json"

	"github.com/mmynk/costshare/internal/models"
)

// Ledger is the wire form of a ledger. The passcode hash never leaves the server.
type Ledger struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Protected bool   `json:"protected"`
	CreatedAt int64  `json:"createdAt"`
}

// Family is the wire form of a family.
type Family struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Members int    `json:"members"`
}

// Expense is the wire form of an expense. FamilyName is the name stored with
// the expense; PayerName is the payer's current name, or "unknown family".
type Expense struct {
	ID         string  `json:"id"`
	FamilyID   string  `json:"familyId"`
	FamilyName string  `json:"familyName"`
	PayerName  string  `json:"payerName,omitempty"`
	Item       string  `json:"item"`
	Amount     float64 `json:"amount"`
}

// Settlement is one family's position in a report. Display fields are
// rendered with the server's currency formatter.
type Settlement struct {
	FamilyID            string  `json:"familyId"`
	FamilyName          string  `json:"familyName"`
	Members             int     `json:"members"`
	ShouldPay           float64 `json:"shouldPay"`
	ActuallyPaid        float64 `json:"actuallyPaid"`
	Balance             float64 `json:"balance"`
	Status              string  `json:"status"`
	ShouldPayDisplay    string  `json:"shouldPayDisplay"`
	ActuallyPaidDisplay string  `json:"actuallyPaidDisplay"`
	BalanceDisplay      string  `json:"balanceDisplay"`
}

// FamilyShare is one family's part of a single expense.
type FamilyShare struct {
	FamilyID     string  `json:"familyId"`
	FamilyName   string  `json:"familyName"`
	Share        float64 `json:"share"`
	ShareDisplay string  `json:"shareDisplay"`
}

// ExpenseBreakdown lists every family's share of one expense, in family order.
type ExpenseBreakdown struct {
	ExpenseID    string        `json:"expenseId"`
	Item         string        `json:"item"`
	PaidBy       string        `json:"paidBy"`
	TotalAmount  float64       `json:"totalAmount"`
	TotalDisplay string        `json:"totalDisplay"`
	Shares       []FamilyShare `json:"shares"`
}

// Instruction tells a debtor how much to pay and to whom it may pay.
type Instruction struct {
	DebtorID      string   `json:"debtorId"`
	Debtor        string   `json:"debtor"`
	Amount        float64  `json:"amount"`
	AmountDisplay string   `json:"amountDisplay"`
	Creditors     []string `json:"creditors"`
}

// UnassignedPayment is money paid by a family that no longer exists.
type UnassignedPayment struct {
	FamilyID      string  `json:"familyId"`
	FamilyName    string  `json:"familyName"`
	Amount        float64 `json:"amount"`
	AmountDisplay string  `json:"amountDisplay"`
}

// SettlementReport is the full result of a settlement computation.
type SettlementReport struct {
	TotalExpenses        float64             `json:"totalExpenses"`
	TotalPeople          int                 `json:"totalPeople"`
	PerPersonCost        float64             `json:"perPersonCost"`
	TotalExpensesDisplay string              `json:"totalExpensesDisplay"`
	PerPersonCostDisplay string              `json:"perPersonCostDisplay"`
	Settlements          []Settlement        `json:"settlements"`
	Breakdowns           []ExpenseBreakdown  `json:"breakdowns"`
	Instructions         []Instruction       `json:"instructions"`
	Unassigned           []UnassignedPayment `json:"unassigned"`
}

type CreateLedgerRequest struct {
	Name     string `json:"name"`
	Passcode string `json:"passcode,omitempty"`
}

type CreateLedgerResponse struct {
	Ledger    *Ledger `json:"ledger"`
	Token     string  `json:"token,omitempty"`
	ExpiresAt int64   `json:"expiresAt,omitempty"`
}

type OpenLedgerRequest struct {
	LedgerID string `json:"ledgerId"`
	Passcode string `json:"passcode"`
}

type OpenLedgerResponse struct {
	Ledger    *Ledger `json:"ledger"`
	Token     string  `json:"token,omitempty"`
	ExpiresAt int64   `json:"expiresAt,omitempty"`
}

type GetLedgerRequest struct {
	LedgerID string `json:"ledgerId"`
}

type GetLedgerResponse struct {
	Ledger *Ledger `json:"ledger"`
}

type ListLedgersRequest struct{}

type ListLedgersResponse struct {
	Ledgers []*Ledger `json:"ledgers"`
}

type DeleteLedgerRequest struct {
	LedgerID string `json:"ledgerId"`
}

type DeleteLedgerResponse struct{}

type AddFamilyRequest struct {
	LedgerID string `json:"ledgerId"`
	Name     string `json:"name"`
	Members  int    `json:"members"`
}

type AddFamilyResponse struct {
	Family *Family `json:"family"`
}

type UpdateFamilyRequest struct {
	LedgerID string `json:"ledgerId"`
	FamilyID string `json:"familyId"`
	Name     string `json:"name"`
	Members  int    `json:"members"`
}

type UpdateFamilyResponse struct {
	Family *Family `json:"family"`
}

type DeleteFamilyRequest struct {
	LedgerID string `json:"ledgerId"`
	FamilyID string `json:"familyId"`
}

type DeleteFamilyResponse struct{}

type ListFamiliesRequest struct {
	LedgerID string `json:"ledgerId"`
}

type ListFamiliesResponse struct {
	Families []*Family `json:"families"`
}

type AddExpenseRequest struct {
	LedgerID string  `json:"ledgerId"`
	FamilyID string  `json:"familyId"`
	Item     string  `json:"item"`
	Amount   float64 `json:"amount"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type UpdateExpenseRequest struct {
	LedgerID  string  `json:"ledgerId"`
	ExpenseID string  `json:"expenseId"`
	FamilyID  string  `json:"familyId"`
	Item      string  `json:"item"`
	Amount    float64 `json:"amount"`
}

type UpdateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	LedgerID  string `json:"ledgerId"`
	ExpenseID string `json:"expenseId"`
}

type DeleteExpenseResponse struct{}

type ListExpensesRequest struct {
	LedgerID string `json:"ledgerId"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type ExportSnapshotRequest struct {
	LedgerID string `json:"ledgerId"`
}

type ExportSnapshotResponse struct {
	Snapshot *models.Snapshot `json:"snapshot"`
}

// ImportSnapshotRequest carries the snapshot as raw JSON so browser exports
// with numeric IDs or string amounts are accepted.
type ImportSnapshotRequest struct {
	LedgerID string          `json:"ledgerId"`
	Snapshot json.RawMessage `json:"snapshot"`
}

type ImportSnapshotResponse struct {
	Families int `json:"families"`
	Expenses int `json:"expenses"`
}

type GetSettlementRequest struct {
	LedgerID string `json:"ledgerId"`
}

type GetSettlementResponse struct {
	Report *SettlementReport `json:"report"`
}

// CalculateRequest runs the engine over records that are not stored.
type CalculateRequest struct {
	Families []*Family  `json:"families"`
	Expenses []*Expense `json:"expenses"`
}

type CalculateResponse struct {
	Report *SettlementReport `json:"report"`
}
