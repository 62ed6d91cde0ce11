package handlers

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/roomatch/user-service/internal/jwt"
)

// Tokener extracts the caller identity from the bearer token. The auth
// middleware has already validated it; handlers re-read the claims.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// callerClaims resolves the caller's claims or fails with the error to send
// as 401.
func callerClaims(t Tokener, r *http.Request) (*jwt.Claims, error) {
	ctx := r.Context()
	tokenString, err := t.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	return t.GetClaims(ctx, tokenString)
}

// nullableString shapes a NULL-able column for JSON: nil when absent.
func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
