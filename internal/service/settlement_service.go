package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/mmynk/costshare/internal/calculator"
	"github.com/mmynk/costshare/internal/currency"
	"github.com/mmynk/costshare/internal/middleware"
	"github.com/mmynk/costshare/internal/models"
	"github.com/mmynk/costshare/internal/storage"
)

// SettlementService implements the SettlementService RPCs.
type SettlementService struct {
	store     storage.Store
	formatter *currency.Formatter
	metrics   *middleware.Metrics
	logger    *slog.Logger
}

// NewSettlementService creates a settlement service. A nil formatter uses the
// default currency; metrics may be nil.
func NewSettlementService(store storage.Store, formatter *currency.Formatter, metrics *middleware.Metrics, logger *slog.Logger) *SettlementService {
	if formatter == nil {
		formatter = currency.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SettlementService{
		store:     store,
		formatter: formatter,
		metrics:   metrics,
		logger:    logger,
	}
}

// GetSettlement computes the settlement report of a stored ledger.
func (s *SettlementService) GetSettlement(ctx context.Context, req *connect.Request[GetSettlementRequest]) (*connect.Response[GetSettlementResponse], error) {
	if _, err := authorizeLedger(ctx, s.store, req.Msg.LedgerID); err != nil {
		return nil, err
	}
	snapshot, err := s.store.GetSnapshot(ctx, req.Msg.LedgerID)
	if err != nil {
		return nil, storageError("load snapshot", err)
	}

	report := calculator.Compute(*snapshot)
	if len(report.Unassigned) > 0 {
		s.logger.Warn("Expenses reference deleted families",
			"ledger_id", req.Msg.LedgerID,
			"families", len(report.Unassigned),
			"amount", report.UnassignedTotal(),
		)
	}
	s.metrics.ObserveSettlement(len(report.Unassigned) > 0)

	s.logger.Debug("Settlement computed",
		"ledger_id", req.Msg.LedgerID,
		"total_expenses", report.TotalExpenses,
		"total_people", report.TotalPeople,
		"per_person", report.PerPersonCost,
	)
	return connect.NewResponse(&GetSettlementResponse{
		Report: s.toReport(report, snapshot.Families, snapshot.Expenses),
	}), nil
}

// Calculate runs the engine over the families and expenses in the request
// without touching storage.
func (s *SettlementService) Calculate(ctx context.Context, req *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error) {
	snapshot := models.Snapshot{
		Families: make([]models.Family, 0, len(req.Msg.Families)),
		Expenses: make([]models.Expense, 0, len(req.Msg.Expenses)),
	}
	for i, f := range req.Msg.Families {
		if f == nil {
			continue
		}
		snapshot.Families = append(snapshot.Families, models.Family{
			ID:       f.ID,
			Name:     f.Name,
			Members:  f.Members,
			Position: i,
		})
	}
	for i, e := range req.Msg.Expenses {
		if e == nil {
			continue
		}
		snapshot.Expenses = append(snapshot.Expenses, models.Expense{
			ID:         e.ID,
			FamilyID:   e.FamilyID,
			FamilyName: e.FamilyName,
			Item:       e.Item,
			Amount:     e.Amount,
			Position:   i,
		})
	}

	report := calculator.Compute(snapshot)
	s.metrics.ObserveSettlement(len(report.Unassigned) > 0)
	return connect.NewResponse(&CalculateResponse{
		Report: s.toReport(report, snapshot.Families, snapshot.Expenses),
	}), nil
}

// toReport converts an engine report to its wire form. Breakdown shares are
// listed in family order.
func (s *SettlementService) toReport(r calculator.Report, families []models.Family, expenses []models.Expense) *SettlementReport {
	f := s.formatter
	out := &SettlementReport{
		TotalExpenses:        r.TotalExpenses,
		TotalPeople:          r.TotalPeople,
		PerPersonCost:        r.PerPersonCost,
		TotalExpensesDisplay: f.Format(r.TotalExpenses),
		PerPersonCostDisplay: f.Format(r.PerPersonCost),
		Settlements:          make([]Settlement, len(r.Settlements)),
		Breakdowns:           make([]ExpenseBreakdown, len(r.Breakdowns)),
		Instructions:         make([]Instruction, len(r.Instructions)),
		Unassigned:           make([]UnassignedPayment, len(r.Unassigned)),
	}

	for i, st := range r.Settlements {
		out.Settlements[i] = Settlement{
			FamilyID:            st.FamilyID,
			FamilyName:          st.FamilyName,
			Members:             st.Members,
			ShouldPay:           st.ShouldPay,
			ActuallyPaid:        st.ActuallyPaid,
			Balance:             st.Balance,
			Status:              calculator.Status(st.Balance).String(),
			ShouldPayDisplay:    f.Format(st.ShouldPay),
			ActuallyPaidDisplay: f.Format(st.ActuallyPaid),
			BalanceDisplay:      f.Format(st.Balance),
		}
	}

	for i, b := range r.Breakdowns {
		shares := make([]FamilyShare, 0, len(families))
		for _, fam := range families {
			share, ok := b.FamilyShares[fam.ID]
			if !ok {
				continue
			}
			shares = append(shares, FamilyShare{
				FamilyID:     fam.ID,
				FamilyName:   share.FamilyName,
				Share:        share.Share,
				ShareDisplay: f.Format(share.Share),
			})
		}
		out.Breakdowns[i] = ExpenseBreakdown{
			ExpenseID:    b.ExpenseID,
			Item:         b.Item,
			PaidBy:       b.PaidBy,
			TotalAmount:  b.TotalAmount,
			TotalDisplay: f.Format(b.TotalAmount),
			Shares:       shares,
		}
	}

	for i, in := range r.Instructions {
		out.Instructions[i] = Instruction{
			DebtorID:      in.DebtorID,
			Debtor:        in.Debtor,
			Amount:        in.Amount,
			AmountDisplay: f.Format(in.Amount),
			Creditors:     in.Creditors,
		}
	}

	for i, u := range r.Unassigned {
		out.Unassigned[i] = UnassignedPayment{
			FamilyID:      u.FamilyID,
			FamilyName:    lastPayerName(expenses, u.FamilyID),
			Amount:        u.Amount,
			AmountDisplay: f.Format(u.Amount),
		}
	}
	return out
}

// lastPayerName returns the name stored on the most recent expense paid by
// familyID, which is the name the family had when it was deleted.
func lastPayerName(expenses []models.Expense, familyID string) string {
	for i := len(expenses) - 1; i >= 0; i-- {
		if expenses[i].FamilyID == familyID && expenses[i].FamilyName != "" {
			return expenses[i].FamilyName
		}
	}
	return calculator.UnknownFamily
}
