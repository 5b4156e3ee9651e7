package application_test

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/boracay-silvertown/go-api-server/internal/activity"
	"github.com/boracay-silvertown/go-api-server/internal/application"
	"github.com/boracay-silvertown/go-api-server/internal/membership"
	"github.com/boracay-silvertown/go-api-server/internal/model"
	sharedError "github.com/boracay-silvertown/go-api-server/internal/shared/error"
	"github.com/boracay-silvertown/go-api-server/internal/shared/middleware"
	"github.com/boracay-silvertown/go-api-server/internal/shared/testutil"
	"github.com/boracay-silvertown/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type applicationTestEnv struct {
	db           *gorm.DB
	router       *gin.Engine
	tokenManager *token.JWTManager
}

func setupApplicationEnv(t *testing.T) *applicationTestEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	tokenManager := token.NewJWTManager(testutil.NewTestConfig())
	recorder := activity.NewRecorder(db, activity.NewActivityLogRepository())

	applicationService := application.NewApplicationService(
		db,
		application.NewApplicationRepository(),
		membership.NewMembershipTypeRepository(),
		recorder,
	)
	handler := application.NewApplicationHandler(applicationService)

	router := testutil.SetupTestRouter()
	authorized := router.Group("/api", middleware.JWTWithManager(tokenManager))
	authorized.POST("/pre-purchase", handler.Create)
	authorized.GET("/pre-purchase", handler.ListMine)

	return &applicationTestEnv{db: db, router: router, tokenManager: tokenManager}
}

func (env *applicationTestEnv) seedMember(t *testing.T, email string) *model.Member {
	t.Helper()
	m := model.NewMember(email, "$2a$10$abcdefghijklmnopqrstuv", "Applicant", "", "", "", "")
	require.NoError(t, env.db.Create(m).Error)
	return m
}

func (env *applicationTestEnv) seedMembershipType(t *testing.T, name string, price float64) *model.MembershipType {
	t.Helper()
	mt := &model.MembershipType{Name: name, NameKo: name, Price: price, IsActive: true}
	require.NoError(t, env.db.Create(mt).Error)
	return mt
}

func (env *applicationTestEnv) bearerFor(t *testing.T, m *model.Member) map[string]string {
	t.Helper()
	accessToken, err := env.tokenManager.GenerateAccessToken(
		strconv.FormatUint(uint64(m.ID), 10), m.Email, m.Role)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + accessToken}
}

func TestCreateApplication_RequiresAuthentication(t *testing.T) {
	// Given: Routes behind the JWT middleware
	env := setupApplicationEnv(t)

	// When: Call without an Authorization header
	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/pre-purchase",
		Body:   application.CreateApplicationRequest{MembershipTypeID: 1},
	})

	// Then: Rejected before reaching the handler
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCreateApplication_Success_SnapshotsPrice(t *testing.T) {
	// Given: A member and an offering
	env := setupApplicationEnv(t)
	m := env.seedMember(t, "buyer@example.com")
	mt := env.seedMembershipType(t, "Standard A", 250000000)

	// When: Submit an application
	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method:  http.MethodPost,
		URL:     "/api/pre-purchase",
		Headers: env.bearerFor(t, m),
		Body: application.CreateApplicationRequest{
			MembershipTypeID: mt.ID,
			PreferredFloor:   3,
			DepositAmount:    10000000,
		},
	})

	// Then: Created with the catalog price snapshotted
	assert.Equal(t, http.StatusOK, recorder.Code)

	var stored model.PrePurchaseApplication
	require.NoError(t, env.db.Where("member_id = ?", m.ID).First(&stored).Error)
	assert.Equal(t, mt.ID, stored.MembershipTypeID)
	assert.Equal(t, float64(250000000), stored.TotalAmount)
	assert.Equal(t, model.ApplicationStatusPending, stored.Status)
	assert.Equal(t, model.PaymentMethodFullPayment, stored.PaymentMethod)

	// And: The snapshot survives a later price change
	require.NoError(t, env.db.Model(&model.MembershipType{}).
		Where("id = ?", mt.ID).Update("price", 999).Error)
	refetched, err := application.NewApplicationRepository().FindByID(context.Background(), env.db, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(250000000), refetched.TotalAmount)
}

func TestCreateApplication_UnknownMembershipType(t *testing.T) {
	// Given: A member but no offerings
	env := setupApplicationEnv(t)
	m := env.seedMember(t, "buyer@example.com")

	// When: Apply for a membership type that does not exist
	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method:  http.MethodPost,
		URL:     "/api/pre-purchase",
		Headers: env.bearerFor(t, m),
		Body:    application.CreateApplicationRequest{MembershipTypeID: 9999},
	})

	// Then: 400 with the domain code
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "APPLICATION-001", errorResponse.Code)
}

func TestListMine_OnlyOwnApplications(t *testing.T) {
	// Given: Two members with one application each
	env := setupApplicationEnv(t)
	mine := env.seedMember(t, "mine@example.com")
	other := env.seedMember(t, "other@example.com")
	mt := env.seedMembershipType(t, "Standard A", 250000000)

	for _, m := range []*model.Member{mine, other} {
		recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
			Method:  http.MethodPost,
			URL:     "/api/pre-purchase",
			Headers: env.bearerFor(t, m),
			Body:    application.CreateApplicationRequest{MembershipTypeID: mt.ID},
		})
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	// When: List my applications
	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/pre-purchase",
		Headers: env.bearerFor(t, mine),
	})

	// Then: Only my row, joined with the membership names
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Applications []application.MemberApplication `json:"applications"`
	}
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Applications, 1)
	assert.Equal(t, mine.ID, response.Applications[0].MemberID)
	assert.Equal(t, "Standard A", response.Applications[0].MembershipName)
}

func TestCreateApplication_RejectsRefreshToken(t *testing.T) {
	// Given: A member holding only a refresh token
	env := setupApplicationEnv(t)
	m := env.seedMember(t, "buyer@example.com")

	refreshToken, err := env.tokenManager.GenerateRefreshToken(
		strconv.FormatUint(uint64(m.ID), 10), m.Email, m.Role)
	require.NoError(t, err)

	// When: Use the refresh token on an API route
	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method:  http.MethodPost,
		URL:     "/api/pre-purchase",
		Headers: map[string]string{"Authorization": "Bearer " + refreshToken},
		Body:    application.CreateApplicationRequest{MembershipTypeID: 1},
	})

	// Then: Refresh tokens are not accepted for resource access
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
