package admin

import (
	"context"
	"strconv"

	"github.com/boracay-silvertown/go-api-server/internal/inquiry"
	sharedContext "github.com/boracay-silvertown/go-api-server/internal/shared/context"
	sharedError "github.com/boracay-silvertown/go-api-server/internal/shared/error"
	"github.com/boracay-silvertown/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *AdminService
}

func NewAdminHandler(adminService *AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminService.Dashboard(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "대시보드 통계 조회 성공", gin.H{"stats": stats})
}

func (h *AdminHandler) ListMembers(c *gin.Context) {
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	members, err := h.adminService.ListMembers(c.Request.Context(), query)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "회원 목록 조회 성공", gin.H{"members": members})
}

func (h *AdminHandler) ListApplications(c *gin.Context) {
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	apps, err := h.adminService.ListApplications(c.Request.Context(), query)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "신청 목록 조회 성공", gin.H{"applications": apps})
}

func (h *AdminHandler) ListInquiries(c *gin.Context) {
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	inquiries, err := h.adminService.ListInquiries(c.Request.Context(), query)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "문의 목록 조회 성공", gin.H{"inquiries": inquiries})
}

func (h *AdminHandler) ApproveApplication(c *gin.Context) {
	h.decideApplication(c, h.adminService.ApproveApplication, "신청이 승인되었습니다.")
}

func (h *AdminHandler) RejectApplication(c *gin.Context) {
	h.decideApplication(c, h.adminService.RejectApplication, "신청이 거절되었습니다.")
}

func (h *AdminHandler) decideApplication(c *gin.Context, decide func(ctx context.Context, applicationID, adminID uint32) error, message string) {
	adminID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	applicationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := decide(c.Request.Context(), applicationID, adminID); err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, message, nil)
}

func (h *AdminHandler) RespondInquiry(c *gin.Context) {
	adminID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	inquiryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var request inquiry.RespondRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.adminService.RespondInquiry(c.Request.Context(), inquiryID, adminID, request.Response); err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "문의 답변이 등록되었습니다.", nil)
}

func (h *AdminHandler) ListMemberActivity(c *gin.Context) {
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	logs, err := h.adminService.ListMemberActivity(c.Request.Context(), memberID, query)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "활동 내역 조회 성공", gin.H{"activities": logs})
}

func (h *AdminHandler) UpdateMemberStatus(c *gin.Context) {
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var request UpdateMemberStatusRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.adminService.UpdateMemberStatus(c.Request.Context(), memberID, request.Status); err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "회원 상태가 변경되었습니다.", nil)
}

func (h *AdminHandler) DeleteMember(c *gin.Context) {
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.DeleteMember(c.Request.Context(), memberID); err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "회원이 삭제되었습니다.", nil)
}

// bindListQuery binds limit/offset query parameters with defaults.
func bindListQuery(c *gin.Context) (ListQuery, bool) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.Error(err)
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		return ListQuery{}, false
	}
	return query, true
}

// pathID parses a numeric path parameter; responds 400 on garbage.
func pathID(c *gin.Context, name string) (uint32, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		return 0, false
	}
	return uint32(id), true
}
