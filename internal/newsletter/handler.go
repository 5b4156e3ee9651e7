package newsletter

import (
	sharedError "github.com/boracay-silvertown/go-api-server/internal/shared/error"
	"github.com/boracay-silvertown/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterService *NewsletterService
}

func NewNewsletterHandler(newsletterService *NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
	}
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var request SubscribeRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.newsletterService.Subscribe(c.Request.Context(), &request); err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "뉴스레터 구독이 완료되었습니다.", nil)
}
