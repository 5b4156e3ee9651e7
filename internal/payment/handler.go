package payment

import (
	"github.com/boracay-silvertown/go-api-server/internal/activity"
	sharedContext "github.com/boracay-silvertown/go-api-server/internal/shared/context"
	sharedError "github.com/boracay-silvertown/go-api-server/internal/shared/error"
	"github.com/boracay-silvertown/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService *PaymentService
}

func NewPaymentHandler(paymentService *PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	if _, ok := sharedContext.RequireMemberID(c); !ok {
		return
	}

	var request CreateIntentRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	intent, err := h.paymentService.CreateIntent(c.Request.Context(), &request)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "결제 인텐트가 생성되었습니다.", gin.H{
		"client_secret":     intent.ClientSecret,
		"payment_intent_id": intent.ID,
		"amount":            intent.Amount,
		"currency":          intent.Currency,
	})
}

func (h *PaymentHandler) Confirm(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request ConfirmRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	meta := activity.RequestMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	app, err := h.paymentService.Confirm(c.Request.Context(), memberID, &request, meta)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "결제가 완료되었습니다.", gin.H{"application": app})
}
