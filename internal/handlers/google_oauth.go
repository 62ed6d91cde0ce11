package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/roomatch/user-service/internal/logger"
	"github.com/roomatch/user-service/internal/models"
	"github.com/roomatch/user-service/internal/services"
)

// GoogleAuthenticator defines the interface that the sign-in service must implement.
type GoogleAuthenticator interface {
	GoogleSignIn(ctx context.Context, idToken string) (string, *models.UserDB, error)
}

// GoogleOAuthRequest represents the JSON body for Google sign-in
// swagger:model GoogleOAuthRequest
type GoogleOAuthRequest struct {
	// Google-issued ID token
	// required: true
	IDToken string `json:"idToken"`
}

// OAuthUser represents the public user fields returned after sign-in
// swagger:model OAuthUser
type OAuthUser struct {
	// User id
	ID uuid.UUID `json:"id"`

	// Email
	// default: john@example.com
	Email string `json:"email"`

	// Given name, null when unknown
	FirstName *string `json:"firstName"`

	// Family name, null when unknown
	LastName *string `json:"lastName"`

	// Role
	// default: USER
	Role string `json:"role"`
}

// GoogleOAuthResponse represents a successful sign-in response
// swagger:model GoogleOAuthResponse
type GoogleOAuthResponse struct {
	// Signed access token, valid for one day
	Token string `json:"token"`

	// Matched or created user
	User OAuthUser `json:"user"`
}

// GoogleOAuthErrorResponse represents an error response for Google sign-in
// swagger:model GoogleOAuthErrorResponse
type GoogleOAuthErrorResponse struct {
	// Error message
	// default: Invalid Google token
	Message string `json:"message"`
}

// NewGoogleOAuthHandler returns an HTTP handler for Google sign-in.
// @Summary Sign in with Google
// @Description Verifies a Google ID token, reconciles it with the local user store (match by subject, then by email, else create) and returns an access token.
// @Tags oauth
// @Accept json
// @Produce json
// @Param googleOAuthRequest body handlers.GoogleOAuthRequest true "Google sign-in request"
// @Success 200 {object} handlers.GoogleOAuthResponse "Access token and user"
// @Failure 400 {object} handlers.GoogleOAuthErrorResponse "Missing idToken"
// @Failure 401 {object} handlers.GoogleOAuthErrorResponse "Token rejected by Google verification"
// @Failure 403 {object} handlers.GoogleOAuthErrorResponse "Account is disabled"
// @Failure 409 {object} handlers.GoogleOAuthErrorResponse "Concurrent sign-up already took the email"
// @Router /oauth/google [post]
func NewGoogleOAuthHandler(svc GoogleAuthenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GoogleOAuthRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GoogleOAuthErrorResponse{
				Message: "idToken is required",
			})
			return
		}

		token, user, err := svc.GoogleSignIn(r.Context(), req.IDToken)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidGoogleToken):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(GoogleOAuthErrorResponse{
					Message: "Invalid Google token",
				})
			case errors.Is(err, services.ErrAccountDisabled):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(GoogleOAuthErrorResponse{
					Message: "Account is disabled",
				})
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(GoogleOAuthErrorResponse{
					Message: "Email already registered",
				})
			default:
				logger.Log.Errorw("google authentication failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GoogleOAuthErrorResponse{
					Message: "Google authentication failed",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GoogleOAuthResponse{
			Token: token,
			User: OAuthUser{
				ID:        user.ID,
				Email:     user.Email,
				FirstName: nullableString(user.FirstName),
				LastName:  nullableString(user.LastName),
				Role:      user.Role,
			},
		})
	}
}
