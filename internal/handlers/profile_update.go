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

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	Update(ctx context.Context, callerID uuid.UUID, callerRole string, targetID uuid.UUID, p models.ProfileUpdate) error
}

// UpdateProfileRequest represents the JSON body for a partial profile update.
// Absent fields keep their stored values.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// Target user id
	// required: true
	ID *uuid.UUID `json:"id"`

	// Interests
	Interests []string `json:"interests"`

	// Furnishing preference
	Furnishing *string `json:"furnishing"`

	// Budget
	Budget *string `json:"budget"`

	// Preferred locations
	PreferredLocations []string `json:"preferredLocations"`

	// Birth date in YYYY-MM-DD form
	BirthDate *string `json:"birthDate"`
}

// UpdateProfileResponse represents a successful profile update response
// swagger:model UpdateProfileResponse
type UpdateProfileResponse struct {
	// Success message
	// default: Profile updated successfully
	Message string `json:"message"`
}

// UpdateProfileErrorResponse represents an error response for profile updates
// swagger:model UpdateProfileErrorResponse
type UpdateProfileErrorResponse struct {
	// Error message
	// default: User not found
	Message string `json:"message"`
}

// NewUpdateProfileHandler returns an HTTP handler for partial profile updates.
// @Summary Update a user profile
// @Description Applies the provided fields only; omitted fields keep their stored values. Callers may update their own profile; ADMINs may update any.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} handlers.UpdateProfileResponse "Profile updated"
// @Failure 400 {object} handlers.UpdateProfileErrorResponse "Validation failure"
// @Failure 401 {object} handlers.UpdateProfileErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.UpdateProfileErrorResponse "Not allowed to update this profile"
// @Failure 404 {object} handlers.UpdateProfileErrorResponse "User not found"
// @Router /profile [put]
func NewUpdateProfileHandler(tokener Tokener, svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := callerClaims(tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UpdateProfileErrorResponse{
				Message: "Unauthorized",
			})
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateProfileErrorResponse{
				Message: arrayShapeMessage(err, "Invalid request body"),
			})
			return
		}

		if req.ID == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateProfileErrorResponse{
				Message: "User id is required",
			})
			return
		}

		birthDate, ok := parseBirthDate(req.BirthDate)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateProfileErrorResponse{
				Message: "birthDate must be a YYYY-MM-DD date",
			})
			return
		}

		err = svc.Update(r.Context(), claims.UserID, claims.Role, *req.ID, models.ProfileUpdate{
			Interests:          req.Interests,
			Furnishing:         req.Furnishing,
			Budget:             req.Budget,
			PreferredLocations: req.PreferredLocations,
			BirthDate:          birthDate,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(UpdateProfileErrorResponse{
					Message: "You are not allowed to update this profile",
				})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateProfileErrorResponse{
					Message: "User not found",
				})
			default:
				logger.Log.Errorw("failed to update profile", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateProfileErrorResponse{
					Message: "Failed to update profile",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateProfileResponse{
			Message: "Profile updated successfully",
		})
	}
}
