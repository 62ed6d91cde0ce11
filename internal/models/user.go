package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// User roles.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Authentication providers.
const (
	AuthProviderLocal  = "LOCAL"
	AuthProviderGoogle = "GOOGLE"
	AuthProviderApple  = "APPLE"
	AuthProviderMock   = "MOCK"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID                 uuid.UUID      `json:"id" db:"id"`                                   // Primary key
	Email              string         `json:"email" db:"email"`                             // Unique email
	PasswordHash       sql.NullString `json:"-" db:"password_hash"`                         // NULL for external-only accounts
	Role               string         `json:"role" db:"role"`                               // USER or ADMIN
	IsActive           bool           `json:"is_active" db:"is_active"`                     // false = soft-deleted
	AuthProvider       string         `json:"auth_provider" db:"auth_provider"`             // LOCAL, GOOGLE, APPLE or MOCK
	GoogleSub          sql.NullString `json:"-" db:"google_sub"`                            // Unique Google subject, NULL until linked
	FirstName          sql.NullString `json:"first_name" db:"first_name"`                   // Given name
	LastName           sql.NullString `json:"last_name" db:"last_name"`                     // Family name
	Interests          pq.StringArray `json:"interests" db:"interests"`                     // TEXT[], NULL until profile created
	PreferredLocations pq.StringArray `json:"preferred_locations" db:"preferred_locations"` // TEXT[]
	Furnishing         sql.NullString `json:"furnishing" db:"furnishing"`                   // Free-form furnishing preference
	Budget             sql.NullString `json:"budget" db:"budget"`                           // Budget kept as text
	BirthDate          sql.NullTime   `json:"birth_date" db:"birth_date"`                   // DATE column
	CreatedAt          time.Time      `json:"created_at" db:"created_at"`                   // Creation timestamp
	UpdatedAt          time.Time      `json:"updated_at" db:"updated_at"`                   // Last update timestamp
}
