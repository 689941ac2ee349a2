package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, authorized ledger, duration and error code.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", procedure,
				"ledger_id", GetLedgerID(ctx),
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if err == nil {
				logger.InfoContext(ctx, "RPC ok", attrs...)
				return resp, nil
			}

			var connectErr *connect.Error
			if errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal {
				logger.WarnContext(ctx, "RPC error", append(attrs,
					"code", connectErr.Code(),
					"error", connectErr.Message(),
				)...)
			} else {
				logger.ErrorContext(ctx, "RPC error", append(attrs,
					"code", connect.CodeOf(err),
					"error", err,
				)...)
			}
			return resp, err
		}
	}
}
