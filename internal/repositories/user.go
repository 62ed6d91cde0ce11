package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/roomatch/user-service/internal/logger"
	"github.com/roomatch/user-service/internal/middlewares"
	"github.com/roomatch/user-service/internal/models"
)

const userColumns = `
	id, email, password_hash, role, is_active, auth_provider, google_sub,
	first_name, last_name, interests, preferred_locations, furnishing,
	budget, birth_date, created_at, updated_at`

// UserReadRepository provides read-only access to user records.
type UserReadRepository struct {
	db *sqlx.DB
}

// NewUserReadRepository creates a new UserReadRepository instance.
func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByGoogleSub returns the user linked to the given Google subject,
// or nil when no such user exists.
func (r *UserReadRepository) GetByGoogleSub(ctx context.Context, sub string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE google_sub = $1
		LIMIT 1
	`
	return r.getOne(ctx, query, sub)
}

// GetByEmail returns the user with the given email, or nil when no such
// user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		LIMIT 1
	`
	return r.getOne(ctx, query, email)
}

// GetByID returns the user with the given id, or nil when no such user exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		LIMIT 1
	`
	return r.getOne(ctx, query, id)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, r.ext(ctx), &user, query, args...)

	// Log with query in single line
	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// UserWriteRepository provides write access to user records.
type UserWriteRepository struct {
	db *sqlx.DB
}

// NewUserWriteRepository creates a new UserWriteRepository instance.
func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a local-provider user with a hashed password.
// The unique constraint on email guards concurrent duplicate registrations.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash string, firstName, lastName *string) error {
	const query = `
		INSERT INTO users (email, password_hash, role, is_active, auth_provider, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, 'USER', TRUE, 'LOCAL', $3, $4, NOW(), NOW())
	`
	args := []any{email, passwordHash, firstName, lastName}

	res, err := r.ext(ctx).ExecContext(ctx, query, args...)
	r.logExec(query, args, res, err)
	return err
}

// CreateFromGoogle inserts a new active USER-role account for a verified
// Google identity. No password is stored.
func (r *UserWriteRepository) CreateFromGoogle(ctx context.Context, email string, firstName, lastName *string, sub string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (email, first_name, last_name, role, is_active, auth_provider, google_sub, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, 'USER', TRUE, 'GOOGLE', $4, NULL, NOW(), NOW())
		RETURNING ` + userColumns
	args := []any{email, firstName, lastName, sub}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.ext(ctx), &user, query, args...)

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, sub},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AttachGoogleSub links a Google subject to an existing account, switching
// its provider to GOOGLE. Name fields are filled only where currently NULL.
func (r *UserWriteRepository) AttachGoogleSub(ctx context.Context, id uuid.UUID, sub string, firstName, lastName *string) error {
	const query = `
		UPDATE users
		SET google_sub = $1,
		    auth_provider = 'GOOGLE',
		    first_name = COALESCE(first_name, $2),
		    last_name = COALESCE(last_name, $3),
		    updated_at = NOW()
		WHERE id = $4
	`
	args := []any{sub, firstName, lastName, id}

	res, err := r.ext(ctx).ExecContext(ctx, query, args...)
	r.logExec(query, args, res, err)
	return err
}

// CreateProfile sets all profile columns at once. The already-created check
// happens at the service layer against the current row.
func (r *UserWriteRepository) CreateProfile(ctx context.Context, id uuid.UUID, p models.ProfileUpdate) error {
	const query = `
		UPDATE users
		SET interests = $1,
		    furnishing = $2,
		    budget = $3,
		    preferred_locations = $4,
		    birth_date = $5,
		    updated_at = NOW()
		WHERE id = $6
	`
	args := []any{
		pq.Array(p.Interests),
		p.Furnishing,
		p.Budget,
		nullableArray(p.PreferredLocations),
		nullableDate(p.BirthDate),
		id,
	}

	res, err := r.ext(ctx).ExecContext(ctx, query, args...)
	r.logExec(query, args, res, err)
	return err
}

// UpdateProfile applies a partial update, keeping the stored value for every
// absent field. Returns false when no row matched the id.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, id uuid.UUID, p models.ProfileUpdate) (bool, error) {
	const query = `
		UPDATE users
		SET interests = COALESCE($1, interests),
		    furnishing = COALESCE($2, furnishing),
		    budget = COALESCE($3, budget),
		    preferred_locations = COALESCE($4, preferred_locations),
		    birth_date = COALESCE($5, birth_date),
		    updated_at = NOW()
		WHERE id = $6
	`
	args := []any{
		nullableArray(p.Interests),
		p.Furnishing,
		p.Budget,
		nullableArray(p.PreferredLocations),
		nullableDate(p.BirthDate),
		id,
	}

	res, err := r.ext(ctx).ExecContext(ctx, query, args...)
	r.logExec(query, args, res, err)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// SoftDelete flips is_active to false. The row is never removed.
func (r *UserWriteRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE users
		SET is_active = FALSE,
		    updated_at = NOW()
		WHERE id = $1
	`
	args := []any{id}

	res, err := r.ext(ctx).ExecContext(ctx, query, args...)
	r.logExec(query, args, res, err)
	return err
}

func (r *UserWriteRepository) logExec(query string, args []any, res sql.Result, err error) {
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow("user exec",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)
}

func (r *UserWriteRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// nullableArray maps a nil slice to SQL NULL so COALESCE keeps the stored
// value; a non-nil slice (including empty) is written as-is.
func nullableArray(v []string) any {
	if v == nil {
		return nil
	}
	return pq.Array(v)
}

func nullableDate(v *time.Time) any {
	if v == nil {
		return nil
	}
	return *v
}
