package service

import (
	"context"
	"fmt"

	"connectrpc.com/connect"
	"github.com/mmynk/costshare/internal/models"
)

// AddExpense records a cost paid by one family of the ledger.
func (s *LedgerService) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	if _, err := authorizeLedger(ctx, s.store, req.Msg.LedgerID); err != nil {
		return nil, err
	}
	item, err := validateExpense(req.Msg.Item, req.Msg.Amount)
	if err != nil {
		return nil, err
	}
	payer, err := s.findFamily(ctx, req.Msg.LedgerID, req.Msg.FamilyID)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		LedgerID:   req.Msg.LedgerID,
		FamilyID:   payer.ID,
		FamilyName: payer.Name,
		Item:       item,
		Amount:     req.Msg.Amount,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, storageError("add expense", err)
	}

	s.logger.Debug("Expense added",
		"ledger_id", expense.LedgerID,
		"expense_id", expense.ID,
		"family_id", expense.FamilyID,
		"amount", expense.Amount,
	)
	return connect.NewResponse(&AddExpenseResponse{
		Expense: toExpense(*expense, []models.Family{*payer}),
	}), nil
}

// UpdateExpense changes the payer, item or amount of an expense.
func (s *LedgerService) UpdateExpense(ctx context.Context, req *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error) {
	expense, err := s.ledgerExpense(ctx, req.Msg.LedgerID, req.Msg.ExpenseID)
	if err != nil {
		return nil, err
	}
	item, err := validateExpense(req.Msg.Item, req.Msg.Amount)
	if err != nil {
		return nil, err
	}
	payer, err := s.findFamily(ctx, req.Msg.LedgerID, req.Msg.FamilyID)
	if err != nil {
		return nil, err
	}

	expense.FamilyID, expense.FamilyName = payer.ID, payer.Name
	expense.Item, expense.Amount = item, req.Msg.Amount
	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		return nil, storageError("update expense", err)
	}
	return connect.NewResponse(&UpdateExpenseResponse{
		Expense: toExpense(*expense, []models.Family{*payer}),
	}), nil
}

// DeleteExpense removes an expense.
func (s *LedgerService) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	expense, err := s.ledgerExpense(ctx, req.Msg.LedgerID, req.Msg.ExpenseID)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteExpense(ctx, expense.ID); err != nil {
		return nil, storageError("delete expense", err)
	}
	return connect.NewResponse(&DeleteExpenseResponse{}), nil
}

// ListExpenses returns the expenses of a ledger in the order they were added,
// each with the current name of its payer.
func (s *LedgerService) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	if _, err := authorizeLedger(ctx, s.store, req.Msg.LedgerID); err != nil {
		return nil, err
	}
	snapshot, err := s.store.GetSnapshot(ctx, req.Msg.LedgerID)
	if err != nil {
		return nil, storageError("list expenses", err)
	}

	out := make([]*Expense, len(snapshot.Expenses))
	for i, e := range snapshot.Expenses {
		out[i] = toExpense(e, snapshot.Families)
	}
	return connect.NewResponse(&ListExpensesResponse{Expenses: out}), nil
}

func (s *LedgerService) ledgerExpense(ctx context.Context, ledgerID, expenseID string) (*models.Expense, error) {
	if _, err := authorizeLedger(ctx, s.store, ledgerID); err != nil {
		return nil, err
	}
	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, storageError("get expense", err)
	}
	if expense.LedgerID != ledgerID {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("expense %s not found in ledger %s", expenseID, ledgerID))
	}
	return expense, nil
}
