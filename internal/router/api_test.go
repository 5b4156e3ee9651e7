package router_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/boracay-silvertown/go-api-server/internal/application"
	"github.com/boracay-silvertown/go-api-server/internal/auth"
	"github.com/boracay-silvertown/go-api-server/internal/model"
	"github.com/boracay-silvertown/go-api-server/internal/router"
	"github.com/boracay-silvertown/go-api-server/internal/shared/database"
	"github.com/boracay-silvertown/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type serverEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

// setupServer wires the full route table the way main does, against sqlite.
func setupServer(t *testing.T) *serverEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	engine := testutil.SetupTestRouter()
	router.Setup(engine, testutil.NewTestConfig(), &database.DB{DB: db})

	return &serverEnv{db: db, router: engine}
}

type authPayload struct {
	Token  string `json:"token"`
	Member struct {
		ID   uint32 `json:"id"`
		Role string `json:"role"`
	} `json:"member"`
}

func (env *serverEnv) register(t *testing.T, email, name string) authPayload {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/auth/register",
		Body: auth.RegisterRequest{
			Email:    email,
			Password: "correct-horse-battery",
			Name:     name,
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var payload authPayload
	testutil.ParseResponse(t, recorder, &payload)
	require.NotEmpty(t, payload.Token)
	return payload
}

func (env *serverEnv) login(t *testing.T, email string) authPayload {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/auth/login",
		Body:   auth.LoginRequest{Email: email, Password: "correct-horse-battery"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var payload authPayload
	testutil.ParseResponse(t, recorder, &payload)
	require.NotEmpty(t, payload.Token)
	return payload
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestServer_Health(t *testing.T) {
	env := setupServer(t)

	recorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/health",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Status string `json:"status"`
	}
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "healthy", response.Status)
}

// TestServer_PurchaseApprovalFlow walks the happy path a real buyer and a
// back-office operator take: register, log in, apply for a membership, approve
// it, and see the decision reflected on both sides.
func TestServer_PurchaseApprovalFlow(t *testing.T) {
	// Given: A catalog entry, a buyer account, and an operator account
	env := setupServer(t)

	offering := &model.MembershipType{
		Name: "Premium B", NameKo: "프리미엄 B형", Price: 380000000, IsActive: true,
	}
	require.NoError(t, env.db.Create(offering).Error)

	buyer := env.register(t, "buyer@example.com", "Buyer")

	operator := env.register(t, "operator@example.com", "Operator")
	require.NoError(t, env.db.Model(&model.Member{}).
		Where("id = ?", operator.Member.ID).
		Update("role", model.RoleAdmin).Error)
	// Tokens carry the role at issue time; log in again to pick up admin.
	operator = env.login(t, "operator@example.com")
	require.Equal(t, model.RoleAdmin, operator.Member.Role)

	// When: The buyer applies for the offering
	createRecorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method:  http.MethodPost,
		URL:     "/api/pre-purchase",
		Headers: bearer(buyer.Token),
		Body: application.CreateApplicationRequest{
			MembershipTypeID: offering.ID,
			PreferredFloor:   2,
		},
	})
	require.Equal(t, http.StatusOK, createRecorder.Code)

	var created struct {
		Application struct {
			ID          uint32  `json:"id"`
			Status      string  `json:"status"`
			TotalAmount float64 `json:"total_amount"`
		} `json:"application"`
	}
	testutil.ParseResponse(t, createRecorder, &created)
	require.NotZero(t, created.Application.ID)
	assert.Equal(t, model.ApplicationStatusPending, created.Application.Status)
	assert.Equal(t, float64(380000000), created.Application.TotalAmount)

	// And: The buyer cannot reach the back office
	forbidden := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/admin/applications",
		Headers: bearer(buyer.Token),
	})
	assert.Equal(t, http.StatusForbidden, forbidden.Code)

	// And: The operator approves the application
	approveRecorder := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method:  http.MethodPut,
		URL:     fmt.Sprintf("/api/admin/applications/%d/approve", created.Application.ID),
		Headers: bearer(operator.Token),
	})
	require.Equal(t, http.StatusOK, approveRecorder.Code)

	// Then: The back-office listing shows the approved row
	adminList := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/admin/applications",
		Headers: bearer(operator.Token),
	})
	require.Equal(t, http.StatusOK, adminList.Code)

	var adminResponse struct {
		Applications []application.AdminApplication `json:"applications"`
	}
	testutil.ParseResponse(t, adminList, &adminResponse)
	require.Len(t, adminResponse.Applications, 1)
	assert.Equal(t, model.ApplicationStatusApproved, adminResponse.Applications[0].Status)
	assert.Equal(t, "buyer@example.com", adminResponse.Applications[0].MemberEmail)
	assert.Equal(t, "Premium B", adminResponse.Applications[0].MembershipName)

	// And: The buyer sees the decision in their own history
	memberList := testutil.ExecuteRequest(t, env.router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/api/pre-purchase",
		Headers: bearer(buyer.Token),
	})
	require.Equal(t, http.StatusOK, memberList.Code)

	var memberResponse struct {
		Applications []application.MemberApplication `json:"applications"`
	}
	testutil.ParseResponse(t, memberList, &memberResponse)
	require.Len(t, memberResponse.Applications, 1)
	assert.Equal(t, model.ApplicationStatusApproved, memberResponse.Applications[0].Status)
	assert.Equal(t, "프리미엄 B형", memberResponse.Applications[0].MembershipNameKo)
}
