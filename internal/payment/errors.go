package payment

import (
	"net/http"

	sharedError "github.com/boracay-silvertown/go-api-server/internal/shared/error"
)

const (
	paymentFailed = "PAYMENT_FAILED" // errInfo
)

var (
	ErrPaymentFailed = sharedError.NewDomainError(paymentFailed)
)

func init() {
	sharedError.RegisterDomainErrorResponse(paymentFailed, sharedError.ErrorResponse{
		Status:  http.StatusBadGateway,
		Code:    "PAYMENT-001",
		Message: "결제 처리에 실패했습니다.",
	})
}
