package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/roomatch/user-service/internal/logger"
	"github.com/roomatch/user-service/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidGoogleToken = errors.New("invalid google token")
	ErrAccountDisabled    = errors.New("account is disabled")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByGoogleSub(ctx context.Context, sub string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash string, firstName, lastName *string) error
	CreateFromGoogle(ctx context.Context, email string, firstName, lastName *string, sub string) (*models.UserDB, error)
	AttachGoogleSub(ctx context.Context, id uuid.UUID, sub string, firstName, lastName *string) error
}

// GoogleVerifier defines the external identity verifier collaborator.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*models.GoogleClaims, error)
}

// JWTGenerator defines an interface for generating access tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email, role string) (string, error)
}

// AuthService handles registration, login and Google sign-in.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	verifier GoogleVerifier
	jwt      JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, verifier GoogleVerifier, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		verifier: verifier,
		jwt:      jwt,
	}
}

// GoogleSignIn reconciles a verified Google identity with the local user
// store and returns an access token plus the matched user. Exactly one of
// three paths runs: match by subject, match by email, or create.
func (svc *AuthService) GoogleSignIn(ctx context.Context, idToken string) (string, *models.UserDB, error) {
	claims, err := svc.verifier.Verify(ctx, idToken)
	if err != nil {
		logger.Log.Errorw("google token verification failed", "err", err)
		return "", nil, ErrInvalidGoogleToken
	}

	user, err := svc.reader.GetByGoogleSub(ctx, claims.Sub)
	if err != nil {
		logger.Log.Errorw("failed to look up user by google sub", "err", err)
		return "", nil, err
	}

	if user == nil {
		user, err = svc.reader.GetByEmail(ctx, claims.Email)
		if err != nil {
			logger.Log.Errorw("failed to look up user by email", "err", err)
			return "", nil, err
		}

		switch {
		case user != nil:
			if !user.IsActive {
				logger.Log.Errorw("google sign-in for disabled account", "email", claims.Email)
				return "", nil, ErrAccountDisabled
			}
			// Attach-once: link the subject only while none is stored.
			// A stored subject always wins over the claim.
			if !user.GoogleSub.Valid {
				if err := svc.writer.AttachGoogleSub(ctx, user.ID, claims.Sub, claims.GivenName, claims.FamilyName); err != nil {
					logger.Log.Errorw("failed to attach google sub", "err", err)
					return "", nil, err
				}
				user.GoogleSub = sql.NullString{String: claims.Sub, Valid: true}
				user.AuthProvider = models.AuthProviderGoogle
				if !user.FirstName.Valid && claims.GivenName != nil {
					user.FirstName = sql.NullString{String: *claims.GivenName, Valid: true}
				}
				if !user.LastName.Valid && claims.FamilyName != nil {
					user.LastName = sql.NullString{String: *claims.FamilyName, Valid: true}
				}
			}
		default:
			user, err = svc.writer.CreateFromGoogle(ctx, claims.Email, claims.GivenName, claims.FamilyName, claims.Sub)
			if err != nil {
				if isUniqueViolation(err) {
					// Lost the first-sign-in race to a concurrent request.
					logger.Log.Errorw("concurrent google sign-in created the email first", "email", claims.Email)
					return "", nil, ErrEmailAlreadyExists
				}
				logger.Log.Errorw("failed to create google user", "err", err)
				return "", nil, err
			}
		}
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// Register registers a new local user.
func (svc *AuthService) Register(ctx context.Context, email, password string, firstName, lastName *string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, email, string(hashedPassword), firstName, lastName); err != nil {
		if isUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a local user and returns an access token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", ErrInvalidCredentials
	}
	if !user.IsActive {
		logger.Log.Errorw("login for disabled account", "email", email)
		return "", ErrAccountDisabled
	}
	// External-only accounts carry no password and cannot log in locally.
	if !user.PasswordHash.Valid {
		logger.Log.Errorw("local login for external-only account", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash.String), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505), the storage-level guard for the duplicate
// email race.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
