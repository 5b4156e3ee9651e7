package application

import (
	"net/http"

	sharedError "github.com/boracay-silvertown/go-api-server/internal/shared/error"
)

const (
	unknownMembershipType = "UNKNOWN_MEMBERSHIP_TYPE" // errInfo
	applicationNotFound   = "APPLICATION_NOT_FOUND"   // errInfo
)

var (
	ErrUnknownMembershipType = sharedError.NewDomainError(unknownMembershipType)
	ErrApplicationNotFound   = sharedError.NewDomainError(applicationNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(unknownMembershipType, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "APPLICATION-001",
		Message: "유효하지 않은 회원권 타입입니다.",
	})

	sharedError.RegisterDomainErrorResponse(applicationNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "APPLICATION-002",
		Message: "신청 내역을 찾을 수 없습니다.",
	})
}
