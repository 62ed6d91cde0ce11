package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/roomatch/user-service/internal/logger"
	"github.com/roomatch/user-service/internal/models"
	"github.com/roomatch/user-service/internal/services"
)

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	Get(ctx context.Context, callerID uuid.UUID, callerRole string, targetID uuid.UUID) (*models.UserDB, error)
}

// GetProfileResponse represents a stored profile. Absent array fields are
// returned as empty sequences, absent dates as null.
// swagger:model GetProfileResponse
type GetProfileResponse struct {
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

	// Interests, empty when never set
	Interests []string `json:"interests"`

	// Furnishing preference
	Furnishing *string `json:"furnishing"`

	// Budget
	Budget *string `json:"budget"`

	// Preferred locations, empty when never set
	PreferredLocations []string `json:"preferredLocations"`

	// Birth date in YYYY-MM-DD form, null when never set
	BirthDate *string `json:"birthDate"`
}

// GetProfileErrorResponse represents an error response for profile reads
// swagger:model GetProfileErrorResponse
type GetProfileErrorResponse struct {
	// Error message
	// default: User not found
	Message string `json:"message"`
}

// NewGetProfileHandler returns an HTTP handler for fetching a profile.
// @Summary Get a user profile
// @Description Returns the stored profile. Callers may read their own profile; ADMINs may read any.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path string true "Target user id"
// @Success 200 {object} handlers.GetProfileResponse "Stored profile"
// @Failure 400 {object} handlers.GetProfileErrorResponse "Malformed user id"
// @Failure 401 {object} handlers.GetProfileErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.GetProfileErrorResponse "Not allowed to view this profile"
// @Failure 404 {object} handlers.GetProfileErrorResponse "User not found"
// @Router /profile/{id} [get]
func NewGetProfileHandler(tokener Tokener, svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := callerClaims(tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GetProfileErrorResponse{
				Message: "Unauthorized",
			})
			return
		}

		targetID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GetProfileErrorResponse{
				Message: "User id is required",
			})
			return
		}

		user, err := svc.Get(r.Context(), claims.UserID, claims.Role, targetID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(GetProfileErrorResponse{
					Message: "You are not allowed to view this profile",
				})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetProfileErrorResponse{
					Message: "User not found",
				})
			default:
				logger.Log.Errorw("failed to fetch profile", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetProfileErrorResponse{
					Message: "Failed to fetch profile",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(shapeProfile(user))
	}
}

// shapeProfile maps a user row to its public profile representation.
func shapeProfile(user *models.UserDB) GetProfileResponse {
	resp := GetProfileResponse{
		ID:                 user.ID,
		Email:              user.Email,
		FirstName:          nullableString(user.FirstName),
		LastName:           nullableString(user.LastName),
		Role:               user.Role,
		Interests:          []string{},
		Furnishing:         nullableString(user.Furnishing),
		Budget:             nullableString(user.Budget),
		PreferredLocations: []string{},
	}

	if user.Interests != nil {
		resp.Interests = user.Interests
	}
	if user.PreferredLocations != nil {
		resp.PreferredLocations = user.PreferredLocations
	}
	if user.BirthDate.Valid {
		d := user.BirthDate.Time.Format("2006-01-02")
		resp.BirthDate = &d
	}

	return resp
}
