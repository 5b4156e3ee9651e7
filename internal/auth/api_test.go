package auth_test

import (
	"net/http"
	"testing"

	"github.com/boracay-silvertown/go-api-server/internal/activity"
	"github.com/boracay-silvertown/go-api-server/internal/auth"
	"github.com/boracay-silvertown/go-api-server/internal/member"
	"github.com/boracay-silvertown/go-api-server/internal/model"
	sharedError "github.com/boracay-silvertown/go-api-server/internal/shared/error"
	"github.com/boracay-silvertown/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for auth handler tests
func setupTestEnvironment(t *testing.T) (*auth.AuthHandler, *gorm.DB) {
	t.Helper()

	// Setup test database
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	// Setup dependencies
	memberRepo := member.NewMemberRepository()
	mockTokenManager := testutil.NewMockTokenManager()
	recorder := activity.NewRecorder(db, activity.NewActivityLogRepository())
	authService := auth.NewAuthService(db, memberRepo, mockTokenManager, recorder)
	authHandler := auth.NewAuthHandler(authService)

	return authHandler, db
}

func registerRequestBody(email string) auth.RegisterRequest {
	return auth.RegisterRequest{
		Email:    email,
		Password: "password123",
		Name:     "Test User",
		Phone:    "010-1234-5678",
	}
}

func TestRegister_Success(t *testing.T) {
	// Given: Setup test environment
	authHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/auth/register", authHandler.Register)

	// Given: Valid registration request
	request := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/auth/register",
		Body:   registerRequestBody("test@example.com"),
	}

	// When: Execute register request
	recorder := testutil.ExecuteRequest(t, router, request)

	// Then: Verify response envelope
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]interface{}
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, true, response["success"])
	assert.NotEmpty(t, response["token"])

	memberBody, ok := response["member"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "test@example.com", memberBody["email"])
	assert.Equal(t, model.RoleMember, memberBody["role"])
	assert.Equal(t, model.MemberStatusPending, memberBody["status"])

	// Password hash must never be serialized
	_, exposed := memberBody["password_hash"]
	assert.False(t, exposed)

	// Registration appends an activity log entry
	var logCount int64
	require.NoError(t, db.Model(&model.ActivityLog{}).Where("action = ?", model.ActionRegister).Count(&logCount).Error)
	assert.Equal(t, int64(1), logCount)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	// Given: Setup test environment
	authHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/auth/register", authHandler.Register)

	// Given: Create first member
	firstRequest := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/auth/register",
		Body:   registerRequestBody("duplicate@example.com"),
	}

	firstRecorder := testutil.ExecuteRequest(t, router, firstRequest)
	require.Equal(t, http.StatusOK, firstRecorder.Code)

	// When: Try to register again with the same email
	duplicateRequest := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/auth/register",
		Body:   registerRequestBody("duplicate@example.com"),
	}

	duplicateRecorder := testutil.ExecuteRequest(t, router, duplicateRequest)

	// Then: Verify error response
	assert.Equal(t, http.StatusBadRequest, duplicateRecorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, duplicateRecorder, &errorResponse)
	assert.Equal(t, "MEMBER-002", errorResponse.Code)
	assert.NotEmpty(t, errorResponse.Message)

	// And: No second row was created
	var memberCount int64
	require.NoError(t, db.Model(&model.Member{}).Where("email = ?", "duplicate@example.com").Count(&memberCount).Error)
	assert.Equal(t, int64(1), memberCount)
}

func TestRegister_ValidationError_MissingRequiredFields(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/auth/register", authHandler.Register)

	testCases := []struct {
		name        string
		requestBody map[string]string
		description string
	}{
		{
			name: "Missing email",
			requestBody: map[string]string{
				"password": "password123",
				"name":     "Test User",
			},
			description: "Should fail when email is missing",
		},
		{
			name: "Missing password",
			requestBody: map[string]string{
				"email": "test@example.com",
				"name":  "Test User",
			},
			description: "Should fail when password is missing",
		},
		{
			name: "Missing name",
			requestBody: map[string]string{
				"email":    "test@example.com",
				"password": "password123",
			},
			description: "Should fail when name is missing",
		},
		{
			name: "Invalid email format",
			requestBody: map[string]string{
				"email":    "invalid-email-format",
				"password": "password123",
				"name":     "Test User",
			},
			description: "Should fail on malformed email",
		},
		{
			name: "Password too short",
			requestBody: map[string]string{
				"email":    "test@example.com",
				"password": "short",
				"name":     "Test User",
			},
			description: "Should fail when password is under 8 characters",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When: Execute request with an invalid body
			request := testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/auth/register",
				Body:   tc.requestBody,
			}

			recorder := testutil.ExecuteRequest(t, router, request)

			// Then: Verify validation error
			assert.Equal(t, http.StatusBadRequest, recorder.Code, tc.description)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.NotEmpty(t, errorResponse.Message, tc.description)
			assert.NotEmpty(t, errorResponse.Code, tc.description)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	// Given: A registered member
	authHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/auth/register", authHandler.Register)
	router.POST("/api/auth/login", authHandler.Login)

	registerRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/auth/register",
		Body:   registerRequestBody("login@example.com"),
	})
	require.Equal(t, http.StatusOK, registerRecorder.Code)

	// When: Login with the correct password
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/auth/login",
		Body: auth.LoginRequest{
			Email:    "login@example.com",
			Password: "password123",
		},
	})

	// Then: Token issued, member summary returned
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]interface{}
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, true, response["success"])
	assert.NotEmpty(t, response["token"])

	// And: last_login_at was stamped
	var found model.Member
	require.NoError(t, db.Where("email = ?", "login@example.com").First(&found).Error)
	assert.NotNil(t, found.LastLoginAt)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	// Given: A registered member
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/auth/register", authHandler.Register)
	router.POST("/api/auth/login", authHandler.Login)

	registerRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/auth/register",
		Body:   registerRequestBody("secure@example.com"),
	})
	require.Equal(t, http.StatusOK, registerRecorder.Code)

	testCases := []struct {
		name  string
		email string
	}{
		{name: "Wrong password", email: "secure@example.com"},
		{name: "Unknown email", email: "nobody@example.com"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/auth/login",
				Body: auth.LoginRequest{
					Email:    tc.email,
					Password: "wrong-password",
				},
			})

			// Both failure modes are indistinguishable 401s
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, "AUTH-003", errorResponse.Code)
		})
	}
}
