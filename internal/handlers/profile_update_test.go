package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/roomatch/user-service/internal/jwt"
	"github.com/roomatch/user-service/internal/models"
	"github.com/roomatch/user-service/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	targetID := uuid.New()
	claims := &jwt.Claims{UserID: callerID, Email: "john@example.com", Role: models.RoleUser}

	tests := []struct {
		name         string
		body         string
		tokenSetup   func(m *MockTokener)
		mockSetup    func(m *MockProfileUpdater)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: fmt.Sprintf(`{"id":%q,"budget":"1500"}`, callerID),
			tokenSetup: func(m *MockTokener) {
				expectCaller(m, claims)
			},
			mockSetup: func(m *MockProfileUpdater) {
				budget := "1500"
				m.EXPECT().
					Update(gomock.Any(), callerID, models.RoleUser, callerID, models.ProfileUpdate{Budget: &budget}).
					Return(nil)
			},
			expectedCode: 200,
			expectedMsg:  "Profile updated successfully",
		},
		{
			name: "unauthorized",
			body: fmt.Sprintf(`{"id":%q}`, callerID),
			tokenSetup: func(m *MockTokener) {
				expectNoCaller(m)
			},
			expectedCode: 401,
			expectedMsg:  "Unauthorized",
		},
		{
			name: "missing id",
			body: `{"budget":"1500"}`,
			tokenSetup: func(m *MockTokener) {
				expectCaller(m, claims)
			},
			expectedCode: 400,
			expectedMsg:  "User id is required",
		},
		{
			name: "interests not an array",
			body: fmt.Sprintf(`{"id":%q,"interests":"hiking"}`, callerID),
			tokenSetup: func(m *MockTokener) {
				expectCaller(m, claims)
			},
			expectedCode: 400,
			expectedMsg:  "interests must be an array of strings",
		},
		{
			name: "malformed birth date",
			body: fmt.Sprintf(`{"id":%q,"birthDate":"April 12"}`, callerID),
			tokenSetup: func(m *MockTokener) {
				expectCaller(m, claims)
			},
			expectedCode: 400,
			expectedMsg:  "birthDate must be a YYYY-MM-DD date",
		},
		{
			name: "forbidden",
			body: fmt.Sprintf(`{"id":%q}`, targetID),
			tokenSetup: func(m *MockTokener) {
				expectCaller(m, claims)
			},
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					Update(gomock.Any(), callerID, models.RoleUser, targetID, gomock.Any()).
					Return(services.ErrForbidden)
			},
			expectedCode: 403,
			expectedMsg:  "You are not allowed to update this profile",
		},
		{
			name: "not found",
			body: fmt.Sprintf(`{"id":%q}`, callerID),
			tokenSetup: func(m *MockTokener) {
				expectCaller(m, claims)
			},
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					Update(gomock.Any(), callerID, models.RoleUser, callerID, gomock.Any()).
					Return(services.ErrUserNotFound)
			},
			expectedCode: 404,
			expectedMsg:  "User not found",
		},
		{
			name: "internal server error",
			body: fmt.Sprintf(`{"id":%q}`, callerID),
			tokenSetup: func(m *MockTokener) {
				expectCaller(m, claims)
			},
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					Update(gomock.Any(), callerID, models.RoleUser, callerID, gomock.Any()).
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedMsg:  "Failed to update profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			if tt.tokenSetup != nil {
				tt.tokenSetup(mockTokener)
			}

			mockSvc := NewMockProfileUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUpdateProfileHandler(mockTokener, mockSvc)

			req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, resp["message"])
		})
	}
}
