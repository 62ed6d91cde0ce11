package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/roomatch/user-service/internal/logger"
	"github.com/roomatch/user-service/internal/models"
	"github.com/roomatch/user-service/internal/services"
)

// ProfileCreator defines the interface that the service must implement.
type ProfileCreator interface {
	Create(ctx context.Context, callerID uuid.UUID, p models.ProfileUpdate) error
}

// CreateProfileRequest represents the JSON body for profile creation
// swagger:model CreateProfileRequest
type CreateProfileRequest struct {
	// Interests, must be non-empty
	// required: true
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

// CreateProfileResponse represents a successful profile creation response
// swagger:model CreateProfileResponse
type CreateProfileResponse struct {
	// Success message
	// default: Profile created successfully
	Message string `json:"message"`
}

// CreateProfileErrorResponse represents an error response for profile creation
// swagger:model CreateProfileErrorResponse
type CreateProfileErrorResponse struct {
	// Error message
	// default: Profile already created. Use update profile.
	Message string `json:"message"`
}

// NewCreateProfileHandler returns an HTTP handler for creating the caller's profile.
// @Summary Create own profile
// @Description Fills the caller's profile fields. Fails when any profile field is already populated.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createProfileRequest body handlers.CreateProfileRequest true "Profile fields"
// @Success 201 {object} handlers.CreateProfileResponse "Profile created"
// @Failure 400 {object} handlers.CreateProfileErrorResponse "Validation failure or profile already created"
// @Failure 401 {object} handlers.CreateProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.CreateProfileErrorResponse "User not found"
// @Router /profile [post]
func NewCreateProfileHandler(tokener Tokener, svc ProfileCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := callerClaims(tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateProfileErrorResponse{
				Message: "Unauthorized",
			})
			return
		}

		var req CreateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateProfileErrorResponse{
				Message: arrayShapeMessage(err, "Invalid request body"),
			})
			return
		}

		if len(req.Interests) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateProfileErrorResponse{
				Message: "interests must be a non-empty array of strings",
			})
			return
		}

		birthDate, ok := parseBirthDate(req.BirthDate)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateProfileErrorResponse{
				Message: "birthDate must be a YYYY-MM-DD date",
			})
			return
		}

		err = svc.Create(r.Context(), claims.UserID, models.ProfileUpdate{
			Interests:          req.Interests,
			Furnishing:         req.Furnishing,
			Budget:             req.Budget,
			PreferredLocations: req.PreferredLocations,
			BirthDate:          birthDate,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CreateProfileErrorResponse{
					Message: "User not found",
				})
			case errors.Is(err, services.ErrProfileAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateProfileErrorResponse{
					Message: "Profile already created. Use update profile.",
				})
			default:
				logger.Log.Errorw("failed to create profile", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateProfileErrorResponse{
					Message: "Failed to create profile",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateProfileResponse{
			Message: "Profile created successfully",
		})
	}
}

// arrayShapeMessage turns a JSON type mismatch on an array field into the
// field-specific validation message; every other decode failure keeps the
// generic one.
func arrayShapeMessage(err error, generic string) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch typeErr.Field {
		case "interests":
			return "interests must be an array of strings"
		case "preferredLocations":
			return "preferredLocations must be an array of strings"
		}
	}
	return generic
}

// parseBirthDate parses an optional calendar date. The second return value
// is false on malformed input.
func parseBirthDate(s *string) (*time.Time, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, false
	}
	return &t, true
}
