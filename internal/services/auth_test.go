package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/roomatch/user-service/internal/models"
	"github.com/roomatch/user-service/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func TestAuthService_GoogleSignIn_SubjectMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockVerifier := services.NewMockGoogleVerifier(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockVerifier, mockJWT)

	userID := uuid.New()
	existing := &models.UserDB{
		ID:        userID,
		Email:     "alice@example.com",
		GoogleSub: sql.NullString{String: "sub-1", Valid: true},
		FirstName: sql.NullString{String: "Alice", Valid: true},
		Role:      models.RoleUser,
		IsActive:  true,
	}

	mockVerifier.EXPECT().
		Verify(gomock.Any(), "id-token").
		Return(&models.GoogleClaims{Sub: "sub-1", Email: "other@example.com", GivenName: strPtr("Other")}, nil)
	mockReader.EXPECT().
		GetByGoogleSub(gomock.Any(), "sub-1").
		Return(existing, nil)
	mockJWT.EXPECT().
		Generate(gomock.Any(), userID, "alice@example.com", models.RoleUser).
		Return("token123", nil)

	token, user, err := svc.GoogleSignIn(context.Background(), "id-token")
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
	assert.Equal(t, userID, user.ID)
	// The stored record wins over the token claims.
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.FirstName.String)
}

func TestAuthService_GoogleSignIn_EmailAttach(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockVerifier := services.NewMockGoogleVerifier(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockVerifier, mockJWT)

	userID := uuid.New()

	tests := []struct {
		name      string
		user      *models.UserDB
		claims    *models.GoogleClaims
		wantFirst string
		wantLast  string
	}{
		{
			name: "attaches sub and backfills missing names",
			user: &models.UserDB{
				ID:           userID,
				Email:        "bob@example.com",
				Role:         models.RoleUser,
				IsActive:     true,
				AuthProvider: models.AuthProviderLocal,
			},
			claims:    &models.GoogleClaims{Sub: "sub-2", Email: "bob@example.com", GivenName: strPtr("Bob"), FamilyName: strPtr("Smith")},
			wantFirst: "Bob",
			wantLast:  "Smith",
		},
		{
			name: "keeps stored names over claim names",
			user: &models.UserDB{
				ID:           userID,
				Email:        "bob@example.com",
				FirstName:    sql.NullString{String: "Robert", Valid: true},
				LastName:     sql.NullString{String: "Stone", Valid: true},
				Role:         models.RoleUser,
				IsActive:     true,
				AuthProvider: models.AuthProviderLocal,
			},
			claims:    &models.GoogleClaims{Sub: "sub-2", Email: "bob@example.com", GivenName: strPtr("Bob"), FamilyName: strPtr("Smith")},
			wantFirst: "Robert",
			wantLast:  "Stone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockVerifier.EXPECT().
				Verify(gomock.Any(), "id-token").
				Return(tt.claims, nil)
			mockReader.EXPECT().
				GetByGoogleSub(gomock.Any(), "sub-2").
				Return(nil, nil)
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), "bob@example.com").
				Return(tt.user, nil)
			mockWriter.EXPECT().
				AttachGoogleSub(gomock.Any(), userID, "sub-2", tt.claims.GivenName, tt.claims.FamilyName).
				Return(nil)
			mockJWT.EXPECT().
				Generate(gomock.Any(), userID, "bob@example.com", models.RoleUser).
				Return("token123", nil)

			token, user, err := svc.GoogleSignIn(context.Background(), "id-token")
			assert.NoError(t, err)
			assert.Equal(t, "token123", token)
			assert.Equal(t, "sub-2", user.GoogleSub.String)
			assert.Equal(t, models.AuthProviderGoogle, user.AuthProvider)
			assert.Equal(t, tt.wantFirst, user.FirstName.String)
			assert.Equal(t, tt.wantLast, user.LastName.String)
		})
	}
}

func TestAuthService_GoogleSignIn_SubAlreadyAttached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockVerifier := services.NewMockGoogleVerifier(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockVerifier, mockJWT)

	userID := uuid.New()
	existing := &models.UserDB{
		ID:           userID,
		Email:        "bob@example.com",
		GoogleSub:    sql.NullString{String: "old-sub", Valid: true},
		Role:         models.RoleUser,
		IsActive:     true,
		AuthProvider: models.AuthProviderGoogle,
	}

	mockVerifier.EXPECT().
		Verify(gomock.Any(), "id-token").
		Return(&models.GoogleClaims{Sub: "new-sub", Email: "bob@example.com"}, nil)
	mockReader.EXPECT().
		GetByGoogleSub(gomock.Any(), "new-sub").
		Return(nil, nil)
	mockReader.EXPECT().
		GetByEmail(gomock.Any(), "bob@example.com").
		Return(existing, nil)
	mockJWT.EXPECT().
		Generate(gomock.Any(), userID, "bob@example.com", models.RoleUser).
		Return("token123", nil)

	// No AttachGoogleSub expectation: the stored subject is kept.
	token, user, err := svc.GoogleSignIn(context.Background(), "id-token")
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
	assert.Equal(t, "old-sub", user.GoogleSub.String)
}

func TestAuthService_GoogleSignIn_DisabledAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockVerifier := services.NewMockGoogleVerifier(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockVerifier, mockJWT)

	existing := &models.UserDB{
		ID:       uuid.New(),
		Email:    "bob@example.com",
		Role:     models.RoleUser,
		IsActive: false,
	}

	mockVerifier.EXPECT().
		Verify(gomock.Any(), "id-token").
		Return(&models.GoogleClaims{Sub: "sub-3", Email: "bob@example.com"}, nil)
	mockReader.EXPECT().
		GetByGoogleSub(gomock.Any(), "sub-3").
		Return(nil, nil)
	mockReader.EXPECT().
		GetByEmail(gomock.Any(), "bob@example.com").
		Return(existing, nil)

	// Disabled accounts are rejected before any write happens.
	token, user, err := svc.GoogleSignIn(context.Background(), "id-token")
	assert.ErrorIs(t, err, services.ErrAccountDisabled)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestAuthService_GoogleSignIn_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockVerifier := services.NewMockGoogleVerifier(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockVerifier, mockJWT)

	userID := uuid.New()
	created := &models.UserDB{
		ID:           userID,
		Email:        "new@example.com",
		GoogleSub:    sql.NullString{String: "sub-4", Valid: true},
		FirstName:    sql.NullString{String: "New", Valid: true},
		Role:         models.RoleUser,
		IsActive:     true,
		AuthProvider: models.AuthProviderGoogle,
	}

	mockVerifier.EXPECT().
		Verify(gomock.Any(), "id-token").
		Return(&models.GoogleClaims{Sub: "sub-4", Email: "new@example.com", GivenName: strPtr("New")}, nil)
	mockReader.EXPECT().
		GetByGoogleSub(gomock.Any(), "sub-4").
		Return(nil, nil)
	mockReader.EXPECT().
		GetByEmail(gomock.Any(), "new@example.com").
		Return(nil, nil)
	mockWriter.EXPECT().
		CreateFromGoogle(gomock.Any(), "new@example.com", gomock.Any(), gomock.Any(), "sub-4").
		Return(created, nil)
	mockJWT.EXPECT().
		Generate(gomock.Any(), userID, "new@example.com", models.RoleUser).
		Return("token123", nil)

	token, user, err := svc.GoogleSignIn(context.Background(), "id-token")
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, models.AuthProviderGoogle, user.AuthProvider)
}

func TestAuthService_GoogleSignIn_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockVerifier := services.NewMockGoogleVerifier(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockVerifier, mockJWT)

	t.Run("invalid token", func(t *testing.T) {
		mockVerifier.EXPECT().
			Verify(gomock.Any(), "bad-token").
			Return(nil, errors.New("signature mismatch"))

		token, user, err := svc.GoogleSignIn(context.Background(), "bad-token")
		assert.ErrorIs(t, err, services.ErrInvalidGoogleToken)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})

	t.Run("reader error", func(t *testing.T) {
		mockVerifier.EXPECT().
			Verify(gomock.Any(), "id-token").
			Return(&models.GoogleClaims{Sub: "sub-5", Email: "x@example.com"}, nil)
		mockReader.EXPECT().
			GetByGoogleSub(gomock.Any(), "sub-5").
			Return(nil, errors.New("db error"))

		_, _, err := svc.GoogleSignIn(context.Background(), "id-token")
		assert.EqualError(t, err, "db error")
	})

	t.Run("concurrent create surfaces conflict", func(t *testing.T) {
		mockVerifier.EXPECT().
			Verify(gomock.Any(), "id-token").
			Return(&models.GoogleClaims{Sub: "sub-6", Email: "race@example.com"}, nil)
		mockReader.EXPECT().
			GetByGoogleSub(gomock.Any(), "sub-6").
			Return(nil, nil)
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "race@example.com").
			Return(nil, nil)
		mockWriter.EXPECT().
			CreateFromGoogle(gomock.Any(), "race@example.com", gomock.Any(), gomock.Any(), "sub-6").
			Return(nil, &pgconn.PgError{Code: "23505"})

		_, _, err := svc.GoogleSignIn(context.Background(), "id-token")
		assert.ErrorIs(t, err, services.ErrEmailAlreadyExists)
	})

	t.Run("jwt error", func(t *testing.T) {
		userID := uuid.New()
		mockVerifier.EXPECT().
			Verify(gomock.Any(), "id-token").
			Return(&models.GoogleClaims{Sub: "sub-7", Email: "y@example.com"}, nil)
		mockReader.EXPECT().
			GetByGoogleSub(gomock.Any(), "sub-7").
			Return(&models.UserDB{ID: userID, Email: "y@example.com", Role: models.RoleUser, IsActive: true}, nil)
		mockJWT.EXPECT().
			Generate(gomock.Any(), userID, "y@example.com", models.RoleUser).
			Return("", errors.New("jwt error"))

		_, _, err := svc.GoogleSignIn(context.Background(), "id-token")
		assert.EqualError(t, err, "jwt error")
	})
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockVerifier := services.NewMockGoogleVerifier(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockVerifier, mockJWT)

	tests := []struct {
		name         string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			email:    "alice@example.com",
			password: "pass1234",
			wantErr:  nil,
		},
		{
			name:         "email already exists",
			email:        "bob@example.com",
			password:     "pass1234",
			existingUser: &models.UserDB{ID: uuid.New()},
			wantErr:      services.ErrEmailAlreadyExists,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			password:  "pass1234",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "unique violation on save",
			email:     "carol@example.com",
			password:  "pass1234",
			writerErr: &pgconn.PgError{Code: "23505"},
			wantErr:   services.ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.email, gomock.Any(), (*string)(nil), (*string)(nil)).
					Return(tt.writerErr)
			}

			err := svc.Register(context.Background(), tt.email, tt.password, nil, nil)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockVerifier := services.NewMockGoogleVerifier(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockVerifier, mockJWT)

	password := "secret123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()

	active := func(email string) *models.UserDB {
		return &models.UserDB{
			ID:           userID,
			Email:        email,
			PasswordHash: sql.NullString{String: string(hashed), Valid: true},
			Role:         models.RoleUser,
			IsActive:     true,
		}
	}

	tests := []struct {
		name      string
		email     string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		expectJWT string
		loginPass string
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			user:      active("alice@example.com"),
			expectJWT: "token123",
			loginPass: password,
		},
		{
			name:      "user does not exist",
			email:     "bob@example.com",
			user:      nil,
			wantErr:   services.ErrInvalidCredentials,
			loginPass: password,
		},
		{
			name:  "disabled account",
			email: "dave@example.com",
			user: &models.UserDB{
				ID:           uuid.New(),
				Email:        "dave@example.com",
				PasswordHash: sql.NullString{String: string(hashed), Valid: true},
				Role:         models.RoleUser,
				IsActive:     false,
			},
			wantErr:   services.ErrAccountDisabled,
			loginPass: password,
		},
		{
			name:  "google-only account has no password",
			email: "goo@example.com",
			user: &models.UserDB{
				ID:       uuid.New(),
				Email:    "goo@example.com",
				Role:     models.RoleUser,
				IsActive: true,
			},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: password,
		},
		{
			name:      "invalid password",
			email:     "carol@example.com",
			user:      active("carol@example.com"),
			wantErr:   services.ErrInvalidCredentials,
			loginPass: "wrongpass",
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			user:      nil,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
			loginPass: password,
		},
		{
			name:      "JWT generation error",
			email:     "dan@example.com",
			user:      active("dan@example.com"),
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
			loginPass: password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.user.IsActive && tt.user.PasswordHash.Valid && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.ID, tt.user.Email, tt.user.Role).
					Return(tt.expectJWT, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
			}
		})
	}
}
