package member

import (
	"net/http"

	sharedError "github.com/boracay-silvertown/go-api-server/internal/shared/error"
)

const (
	memberAlreadyExists = "MEMBER_ALREADY_EXISTS" // errInfo
	memberNotFound      = "MEMBER_NOT_FOUND"      // errInfo
)

var (
	ErrMemberAlreadyExists = sharedError.NewDomainError(memberAlreadyExists)
	ErrMemberNotFound      = sharedError.NewDomainError(memberNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "회원 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(memberAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-002",
		Message: "이미 등록된 이메일입니다.",
	})
}
