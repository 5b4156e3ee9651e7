package inquiry

import (
	"net/http"

	sharedError "github.com/boracay-silvertown/go-api-server/internal/shared/error"
)

const (
	inquiryNotFound = "INQUIRY_NOT_FOUND" // errInfo
)

var (
	ErrInquiryNotFound = sharedError.NewDomainError(inquiryNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(inquiryNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "INQUIRY-001",
		Message: "문의 내역을 찾을 수 없습니다.",
	})
}
