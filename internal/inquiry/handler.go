package inquiry

import (
	sharedContext "github.com/boracay-silvertown/go-api-server/internal/shared/context"
	sharedError "github.com/boracay-silvertown/go-api-server/internal/shared/error"
	"github.com/boracay-silvertown/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	inquiryService *InquiryService
}

func NewInquiryHandler(inquiryService *InquiryService) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
	}
}

// Create accepts both anonymous and authenticated submissions; a valid
// bearer token (resolved by the optional JWT middleware) attributes the inquiry.
func (h *InquiryHandler) Create(c *gin.Context) {
	var request CreateInquiryRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	memberID := sharedContext.OptionalMemberID(c)

	inquiry, err := h.inquiryService.Create(c.Request.Context(), memberID, &request)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "문의사항이 등록되었습니다.", gin.H{"inquiry": inquiry})
}
