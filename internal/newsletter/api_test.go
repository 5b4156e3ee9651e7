package newsletter_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/boracay-silvertown/go-api-server/internal/model"
	"github.com/boracay-silvertown/go-api-server/internal/newsletter"
	"github.com/boracay-silvertown/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupNewsletter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	service := newsletter.NewNewsletterService(db, newsletter.NewNewsletterRepository())
	handler := newsletter.NewNewsletterHandler(service)

	router := testutil.SetupTestRouter()
	router.POST("/api/newsletter/subscribe", handler.Subscribe)
	return router, db
}

func TestSubscribe_Success(t *testing.T) {
	// Given: A fresh subscriber
	router, db := setupNewsletter(t)

	// When: Subscribe
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/newsletter/subscribe",
		Body: newsletter.SubscribeRequest{
			Email:    "reader@example.com",
			Name:     "Reader",
			Language: "en",
		},
	})

	// Then: Stored active with the chosen language
	assert.Equal(t, http.StatusOK, recorder.Code)

	sub, err := newsletter.NewNewsletterRepository().FindByEmail(context.Background(), db, "reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, "en", sub.Language)
	assert.True(t, sub.IsActive)
}

func TestSubscribe_Idempotent(t *testing.T) {
	// Given: An existing subscription
	router, db := setupNewsletter(t)

	first := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/newsletter/subscribe",
		Body: newsletter.SubscribeRequest{
			Email: "reader@example.com",
			Name:  "Reader",
		},
	})
	require.Equal(t, http.StatusOK, first.Code)

	// When: Subscribe again with the same email and new details
	second := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/newsletter/subscribe",
		Body: newsletter.SubscribeRequest{
			Email:    "reader@example.com",
			Name:     "Renamed Reader",
			Language: "en",
		},
	})

	// Then: Still 200, single row, details refreshed
	assert.Equal(t, http.StatusOK, second.Code)

	var count int64
	require.NoError(t, db.Model(&model.NewsletterSubscription{}).
		Where("email = ?", "reader@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	sub, err := newsletter.NewNewsletterRepository().FindByEmail(context.Background(), db, "reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Renamed Reader", sub.Name)
	assert.Equal(t, "en", sub.Language)
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	// Given: Router
	router, _ := setupNewsletter(t)

	// When: Subscribe with a malformed email
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/newsletter/subscribe",
		Body:   map[string]string{"email": "not-an-email"},
	})

	// Then: Validation error
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
