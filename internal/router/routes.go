package router

import (
	"github.com/boracay-silvertown/go-api-server/internal/activity"
	"github.com/boracay-silvertown/go-api-server/internal/admin"
	"github.com/boracay-silvertown/go-api-server/internal/application"
	"github.com/boracay-silvertown/go-api-server/internal/auth"
	"github.com/boracay-silvertown/go-api-server/internal/config"
	"github.com/boracay-silvertown/go-api-server/internal/inquiry"
	"github.com/boracay-silvertown/go-api-server/internal/member"
	"github.com/boracay-silvertown/go-api-server/internal/membership"
	"github.com/boracay-silvertown/go-api-server/internal/meta"
	"github.com/boracay-silvertown/go-api-server/internal/newsletter"
	"github.com/boracay-silvertown/go-api-server/internal/payment"
	"github.com/boracay-silvertown/go-api-server/internal/shared/database"
	"github.com/boracay-silvertown/go-api-server/internal/shared/middleware"
	"github.com/boracay-silvertown/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	memberRepository := member.NewMemberRepository()
	membershipRepository := membership.NewMembershipTypeRepository()
	applicationRepository := application.NewApplicationRepository()
	inquiryRepository := inquiry.NewInquiryRepository()
	newsletterRepository := newsletter.NewNewsletterRepository()
	activityRepository := activity.NewActivityLogRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)
	recorder := activity.NewRecorder(db.DB, activityRepository)
	paymentProvider := payment.NewMockProvider()

	// service
	authService := auth.NewAuthService(db.DB, memberRepository, tokenManager, recorder)
	memberService := member.NewMemberService(db.DB, memberRepository)
	membershipService := membership.NewMembershipService(db.DB, membershipRepository)
	applicationService := application.NewApplicationService(db.DB, applicationRepository, membershipRepository, recorder)
	inquiryService := inquiry.NewInquiryService(db.DB, inquiryRepository)
	newsletterService := newsletter.NewNewsletterService(db.DB, newsletterRepository)
	paymentService := payment.NewPaymentService(db.DB, paymentProvider, membershipRepository, applicationRepository, recorder)
	adminService := admin.NewAdminService(db.DB, memberRepository, applicationRepository, inquiryRepository, newsletterRepository, activityRepository)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	memberHandler := member.NewMemberHandler(memberService)
	membershipHandler := membership.NewMembershipHandler(membershipService)
	applicationHandler := application.NewApplicationHandler(applicationService)
	inquiryHandler := inquiry.NewInquiryHandler(inquiryService)
	newsletterHandler := newsletter.NewNewsletterHandler(newsletterService)
	paymentHandler := payment.NewPaymentHandler(paymentService)
	adminHandler := admin.NewAdminHandler(adminService)

	api := router.Group("/api")

	// Public routes
	authAPI := api.Group("/auth")
	{
		authAPI.POST("/register", authHandler.Register)
		authAPI.POST("/login", authHandler.Login)
		authAPI.POST("/refresh", authHandler.Refresh)
	}

	api.GET("/membership-types", membershipHandler.GetCatalog)
	api.POST("/newsletter/subscribe", newsletterHandler.Subscribe)

	// Inquiries accept anonymous submissions but attribute members when a token is present
	api.POST("/inquiries", middleware.OptionalJWT(tokenManager), inquiryHandler.Create)

	// Member routes (authentication required)
	memberAPI := api.Group("")
	memberAPI.Use(middleware.JWTWithManager(tokenManager))
	{
		memberAPI.GET("/members/me", memberHandler.GetProfile)
		memberAPI.POST("/pre-purchase", applicationHandler.Create)
		memberAPI.GET("/pre-purchase", applicationHandler.ListMine)
		memberAPI.POST("/payment/create-intent", paymentHandler.CreateIntent)
		memberAPI.POST("/payment/confirm", paymentHandler.Confirm)
	}

	// Admin routes (admin or manager role required)
	adminAPI := api.Group("/admin")
	adminAPI.Use(middleware.JWTWithManager(tokenManager), middleware.AdminOnly())
	{
		adminAPI.GET("/dashboard", adminHandler.Dashboard)
		adminAPI.GET("/members", adminHandler.ListMembers)
		adminAPI.GET("/applications", adminHandler.ListApplications)
		adminAPI.GET("/inquiries", adminHandler.ListInquiries)
		adminAPI.GET("/members/:id/activity", adminHandler.ListMemberActivity)
		adminAPI.PUT("/applications/:id/approve", adminHandler.ApproveApplication)
		adminAPI.PUT("/applications/:id/reject", adminHandler.RejectApplication)
		adminAPI.PUT("/inquiries/:id/respond", adminHandler.RespondInquiry)
		adminAPI.PUT("/members/:id/status", adminHandler.UpdateMemberStatus)
		adminAPI.DELETE("/members/:id", adminHandler.DeleteMember)
	}
}
