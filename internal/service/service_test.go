package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/mmynk/costshare/internal/auth"
	"github.com/mmynk/costshare/internal/currency"
	"github.com/mmynk/costshare/internal/middleware"
	"github.com/mmynk/costshare/internal/storage/sqlite"
	"github.com/prometheus/client_golang/prometheus"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type testClients struct {
	ledgers     *LedgerServiceClient
	settlements *SettlementServiceClient
}

// setupTestServer starts both services on a temp SQLite database, wired with
// the same interceptors as the real server.
func setupTestServer(t *testing.T) (testClients, func()) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	tokens := auth.NewJWTManager(testSecret, time.Hour)
	metrics := middleware.NewMetrics(prometheus.NewRegistry())
	interceptors := connect.WithInterceptors(
		metrics.Interceptor(),
		middleware.LedgerAuth(tokens),
	)

	ledgerSvc := NewLedgerService(store, auth.NewPasscodeAuthenticator(store), tokens, nil)
	ledgerPath, ledgerHandler := NewLedgerServiceHandler(ledgerSvc, interceptors)

	formatter := currency.NewFormatter("en-US", "USD")
	settlementSvc := NewSettlementService(store, formatter, metrics, nil)
	settlementPath, settlementHandler := NewSettlementServiceHandler(settlementSvc, interceptors)

	mux := http.NewServeMux()
	mux.Handle(ledgerPath, ledgerHandler)
	mux.Handle(settlementPath, settlementHandler)
	server := httptest.NewServer(mux)

	clients := testClients{
		ledgers:     NewLedgerServiceClient(http.DefaultClient, server.URL),
		settlements: NewSettlementServiceClient(http.DefaultClient, server.URL),
	}
	cleanup := func() {
		server.Close()
		store.Close()
	}
	return clients, cleanup
}

func createLedger(t *testing.T, c testClients, name string) string {
	t.Helper()
	resp, err := c.ledgers.CreateLedger(context.Background(), connect.NewRequest(&CreateLedgerRequest{Name: name}))
	if err != nil {
		t.Fatalf("CreateLedger failed: %v", err)
	}
	return resp.Msg.Ledger.ID
}

func addFamily(t *testing.T, c testClients, ledgerID, name string, members int) string {
	t.Helper()
	resp, err := c.ledgers.AddFamily(context.Background(), connect.NewRequest(&AddFamilyRequest{
		LedgerID: ledgerID,
		Name:     name,
		Members:  members,
	}))
	if err != nil {
		t.Fatalf("AddFamily(%s) failed: %v", name, err)
	}
	return resp.Msg.Family.ID
}

func addExpense(t *testing.T, c testClients, ledgerID, familyID, item string, amount float64) string {
	t.Helper()
	resp, err := c.ledgers.AddExpense(context.Background(), connect.NewRequest(&AddExpenseRequest{
		LedgerID: ledgerID,
		FamilyID: familyID,
		Item:     item,
		Amount:   amount,
	}))
	if err != nil {
		t.Fatalf("AddExpense(%s) failed: %v", item, err)
	}
	return resp.Msg.Expense.ID
}

func getReport(t *testing.T, c testClients, ledgerID string) *SettlementReport {
	t.Helper()
	resp, err := c.settlements.GetSettlement(context.Background(), connect.NewRequest(&GetSettlementRequest{LedgerID: ledgerID}))
	if err != nil {
		t.Fatalf("GetSettlement failed: %v", err)
	}
	return resp.Msg.Report
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("code = %v, want %v (err: %v)", got, want, err)
	}
}
