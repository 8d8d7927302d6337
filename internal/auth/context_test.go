package auth

import (
	"context"
	"testing"

	"bankingBack/internal/models"
)

func TestUserIDClaim(t *testing.T) {
	if _, ok := UserIDClaim(context.Background()); ok {
		t.Fatal("expected no claim on empty context")
	}

	ctx := WithClaims(context.Background(), &models.Claims{Role: models.RoleCustomer})
	if _, ok := UserIDClaim(ctx); ok {
		t.Fatal("expected no claim when user_id is empty")
	}

	ctx = WithClaims(context.Background(), &models.Claims{UserID: "42", Role: models.RoleCustomer})
	id, ok := UserIDClaim(ctx)
	if !ok || id != "42" {
		t.Fatalf("expected 42, got %q (ok=%v)", id, ok)
	}
}

func TestClaimsFromContextNil(t *testing.T) {
	ctx := WithClaims(context.Background(), nil)
	if _, ok := ClaimsFromContext(ctx); ok {
		t.Fatal("expected nil claims to be reported as absent")
	}
}
