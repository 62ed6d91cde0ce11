package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/roomatch/user-service/internal/logger"
	"github.com/roomatch/user-service/internal/models"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrForbidden             = errors.New("not allowed to access this profile")
	ErrProfileAlreadyExists  = errors.New("profile already created")
	ErrProfileAlreadyDeleted = errors.New("profile is already deleted")
)

// ProfileReader defines read-only operations for profiles.
type ProfileReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// ProfileWriter defines write operations for profiles.
type ProfileWriter interface {
	CreateProfile(ctx context.Context, id uuid.UUID, p models.ProfileUpdate) error
	UpdateProfile(ctx context.Context, id uuid.UUID, p models.ProfileUpdate) (bool, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// ProfileService handles profile create, read, update and soft delete.
// Every operation on another user's profile requires the ADMIN role.
type ProfileService struct {
	reader ProfileReader
	writer ProfileWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader ProfileReader, writer ProfileWriter) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
	}
}

// Create fills the caller's own profile. It fails when any profile field is
// already populated; partial updates go through Update instead.
func (svc *ProfileService) Create(ctx context.Context, callerID uuid.UUID, p models.ProfileUpdate) error {
	user, err := svc.reader.GetByID(ctx, callerID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if user.HasAnyField() {
		return ErrProfileAlreadyExists
	}

	if err := svc.writer.CreateProfile(ctx, callerID, p); err != nil {
		logger.Log.Errorw("failed to create profile", "err", err)
		return err
	}

	return nil
}

// Get returns the target user's profile, enforcing self-or-admin access.
func (svc *ProfileService) Get(ctx context.Context, callerID uuid.UUID, callerRole string, targetID uuid.UUID) (*models.UserDB, error) {
	if !allowed(callerID, callerRole, targetID) {
		return nil, ErrForbidden
	}

	user, err := svc.reader.GetByID(ctx, targetID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// Update applies a partial profile update, enforcing self-or-admin access.
// Absent fields keep their stored values.
func (svc *ProfileService) Update(ctx context.Context, callerID uuid.UUID, callerRole string, targetID uuid.UUID, p models.ProfileUpdate) error {
	if !allowed(callerID, callerRole, targetID) {
		return ErrForbidden
	}

	found, err := svc.writer.UpdateProfile(ctx, targetID, p)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "err", err)
		return err
	}
	if !found {
		return ErrUserNotFound
	}

	return nil
}

// Delete soft-deletes the target user, enforcing self-or-admin access.
// Deleting an already-inactive user is a conflict.
func (svc *ProfileService) Delete(ctx context.Context, callerID uuid.UUID, callerRole string, targetID uuid.UUID) error {
	if !allowed(callerID, callerRole, targetID) {
		return ErrForbidden
	}

	user, err := svc.reader.GetByID(ctx, targetID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !user.IsActive {
		return ErrProfileAlreadyDeleted
	}

	if err := svc.writer.SoftDelete(ctx, targetID); err != nil {
		logger.Log.Errorw("failed to soft delete user", "err", err)
		return err
	}

	return nil
}

// allowed implements the self-or-admin authorization rule.
func allowed(callerID uuid.UUID, callerRole string, targetID uuid.UUID) bool {
	return callerID == targetID || callerRole == models.RoleAdmin
}
