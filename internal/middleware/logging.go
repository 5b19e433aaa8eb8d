package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/adarkz/YellowCarGame-chef/pkg/api/yellowcarv1"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call.
// Install it after OptionalAuth so the user ID is known.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			attrs := []any{
				"procedure", req.Spec().Procedure,
				"user_id", GetUserID(ctx),
			}

			resp, err := next(ctx, req)

			attrs = append(attrs, "duration_ms", time.Since(start).Milliseconds())
			var connectErr *connect.Error
			switch {
			case err == nil:
				slog.Info("RPC ok", attrs...)
			case errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal:
				attrs = append(attrs, "code", connectErr.Code(), "error", connectErr.Message())
				if reason := yellowcarv1.ErrorReason(err); reason != "" {
					attrs = append(attrs, "reason", reason)
				}
				slog.Warn("RPC error", attrs...)
			default:
				attrs = append(attrs, "code", connect.CodeOf(err), "error", err)
				slog.Error("RPC error", attrs...)
			}

			return resp, err
		}
	}
}
