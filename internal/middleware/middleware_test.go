package middleware

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/mmynk/costshare/internal/auth"
	"github.com/mmynk/costshare/internal/models"
	"github.com/prometheus/client_golang/prometheus"
)

type ping struct{}

func TestLedgerAuth(t *testing.T) {
	manager := auth.NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	token, _, err := manager.Generate(&models.Ledger{ID: "ledger-1"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tests := []struct {
		name       string
		manager    *auth.JWTManager
		header     string
		wantLedger string
		wantCode   connect.Code
	}{
		{name: "no header passes through", manager: manager},
		{name: "valid token", manager: manager, header: "Bearer " + token, wantLedger: "ledger-1"},
		{name: "missing bearer prefix", manager: manager, header: token, wantCode: connect.CodeUnauthenticated},
		{name: "invalid token", manager: manager, header: "Bearer nope", wantCode: connect.CodeUnauthenticated},
		{name: "disabled auth ignores header", manager: nil, header: "Bearer nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLedger string
			next := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				gotLedger = GetLedgerID(ctx)
				return connect.NewResponse(&ping{}), nil
			})

			req := connect.NewRequest(&ping{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}
			_, err := LedgerAuth(tt.manager)(next)(context.Background(), req)

			if tt.wantCode != 0 {
				if connect.CodeOf(err) != tt.wantCode {
					t.Errorf("code = %v, want %v", connect.CodeOf(err), tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotLedger != tt.wantLedger {
				t.Errorf("ledger = %q, want %q", gotLedger, tt.wantLedger)
			}
		})
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveSettlement(false)
	m.ObserveSettlement(true)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	want := map[string]float64{
		"costshare_settlements_computed_total":       2,
		"costshare_unassigned_payment_reports_total": 1,
	}
	for _, mf := range families {
		expected, ok := want[mf.GetName()]
		if !ok {
			continue
		}
		if got := mf.GetMetric()[0].GetCounter().GetValue(); got != expected {
			t.Errorf("%s = %v, want %v", mf.GetName(), got, expected)
		}
		delete(want, mf.GetName())
	}
	for name := range want {
		t.Errorf("metric %s not registered", name)
	}

	var nilMetrics *Metrics
	nilMetrics.ObserveSettlement(true)
}
