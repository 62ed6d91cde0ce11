package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/roomatch/user-service/internal/logger"
	"github.com/roomatch/user-service/internal/services"
)

// ProfileDeleter defines the interface that the service must implement.
type ProfileDeleter interface {
	Delete(ctx context.Context, callerID uuid.UUID, callerRole string, targetID uuid.UUID) error
}

// DeleteProfileResponse represents a successful soft-delete response
// swagger:model DeleteProfileResponse
type DeleteProfileResponse struct {
	// Success message
	// default: Profile deleted successfully
	Message string `json:"message"`
}

// DeleteProfileErrorResponse represents an error response for profile deletion
// swagger:model DeleteProfileErrorResponse
type DeleteProfileErrorResponse struct {
	// Error message
	// default: Profile is already deleted
	Message string `json:"message"`
}

// NewDeleteProfileHandler returns an HTTP handler for soft-deleting a profile.
// @Summary Delete a user profile
// @Description Marks the account inactive; the row is never removed. Deleting an already-inactive account is rejected.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path string true "Target user id"
// @Success 200 {object} handlers.DeleteProfileResponse "Profile soft-deleted"
// @Failure 400 {object} handlers.DeleteProfileErrorResponse "Profile is already deleted / malformed id"
// @Failure 401 {object} handlers.DeleteProfileErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.DeleteProfileErrorResponse "Not allowed to delete this profile"
// @Failure 404 {object} handlers.DeleteProfileErrorResponse "User not found"
// @Router /profile/{id} [delete]
func NewDeleteProfileHandler(tokener Tokener, svc ProfileDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := callerClaims(tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DeleteProfileErrorResponse{
				Message: "Unauthorized",
			})
			return
		}

		targetID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeleteProfileErrorResponse{
				Message: "User id is required",
			})
			return
		}

		err = svc.Delete(r.Context(), claims.UserID, claims.Role, targetID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrForbidden):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(DeleteProfileErrorResponse{
					Message: "You are not allowed to delete this profile",
				})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeleteProfileErrorResponse{
					Message: "User not found",
				})
			case errors.Is(err, services.ErrProfileAlreadyDeleted):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DeleteProfileErrorResponse{
					Message: "Profile is already deleted",
				})
			default:
				logger.Log.Errorw("failed to delete profile", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeleteProfileErrorResponse{
					Message: "Failed to delete profile",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteProfileResponse{
			Message: "Profile deleted successfully",
		})
	}
}
