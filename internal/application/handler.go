package application

import (
	"github.com/boracay-silvertown/go-api-server/internal/activity"
	sharedContext "github.com/boracay-silvertown/go-api-server/internal/shared/context"
	sharedError "github.com/boracay-silvertown/go-api-server/internal/shared/error"
	"github.com/boracay-silvertown/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationService *ApplicationService
}

func NewApplicationHandler(applicationService *ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request CreateApplicationRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	meta := activity.RequestMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	app, err := h.applicationService.Create(c.Request.Context(), memberID, &request, meta)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "사전구매 신청이 완료되었습니다.", gin.H{"application": app})
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListMine(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "신청 내역 조회 성공", gin.H{"applications": apps})
}
