package auth

import (
	"context"

	"bankingBack/internal/models"
)

type contextKey string

const claimsKey contextKey = "claims"

// WithClaims attaches verified token claims to ctx.
func WithClaims(ctx context.Context, claims *models.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the claims stored by WithClaims, if any.
func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*models.Claims)
	return claims, ok && claims != nil
}

// UserIDClaim returns the caller's identifier claim, or false when it is absent.
func UserIDClaim(ctx context.Context) (string, bool) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}
