package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	"github.com/mmynk/costshare/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// LedgerIDKey is the context key for the ledger an access token was issued for.
const LedgerIDKey contextKey = "ledger_id"

// GetLedgerID extracts the authorized ledger ID from the context.
// Returns empty string if the request carried no token.
func GetLedgerID(ctx context.Context) string {
	ledgerID, _ := ctx.Value(LedgerIDKey).(string)
	return ledgerID
}

// WithLedgerID returns a context authorized for the given ledger.
func WithLedgerID(ctx context.Context, ledgerID string) context.Context {
	return context.WithValue(ctx, LedgerIDKey, ledgerID)
}

// LedgerAuth returns an interceptor that validates bearer tokens when present
// and adds the ledger they grant to the context. Requests without a token pass
// through; whether a ledger needs one is decided by the service. A nil
// manager disables token handling entirely.
func LedgerAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if jwtManager == nil || authHeader == "" {
				return next(ctx, req)
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithLedgerID(ctx, claims.LedgerID), req)
		}
	}
}
