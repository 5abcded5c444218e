// Package middleware holds the connect interceptors of the tracker service.
package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/mvptracker/internal/auth"
	"github.com/mmynk/mvptracker/pkg/api"
)

// Authenticate resolves the caller identity from a bearer token.
// Requests without an Authorization header run as the anonymous identity; a
// malformed, forged or expired token is rejected with Unauthenticated.
func Authenticate(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return next(ctx, req)
			}

			scheme, tokenString, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
				return nil, api.NewError(api.KindUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				return nil, api.NewError(api.KindUnauthenticated, err)
			}

			ctx = auth.WithIdentity(ctx, claims.Subject)
			ctx = auth.WithAdminSession(ctx, claims.AdminSession)
			return next(ctx, req)
		}
	}
}
