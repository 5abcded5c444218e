package middleware

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/mvptracker/internal/metrics"
)

// MetricsInterceptor records call counts, codes and latency per procedure.
func MetricsInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			done := m.Start(req.Spec().Procedure)
			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			done(code)
			return resp, err
		}
	}
}
