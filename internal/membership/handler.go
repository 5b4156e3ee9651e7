package membership

import (
	sharedError "github.com/boracay-silvertown/go-api-server/internal/shared/error"
	"github.com/boracay-silvertown/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	membershipService *MembershipService
}

func NewMembershipHandler(membershipService *MembershipService) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
	}
}

func (h *MembershipHandler) GetCatalog(c *gin.Context) {
	types, err := h.membershipService.GetCatalog(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "회원권 타입 조회 성공", gin.H{"membershipTypes": types})
}
