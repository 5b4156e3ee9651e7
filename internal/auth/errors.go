package auth

import (
	"net/http"

	sharedError "github.com/boracay-silvertown/go-api-server/internal/shared/error"
)

const (
	incorrectEmailPassword = "INCORRECT_EMAIL_PASSWORD" // errInfo
	invalidRefreshToken    = "INVALID_REFRESH_TOKEN"    // errInfo
)

var (
	ErrInCorrectEmailPassword = sharedError.NewDomainError(incorrectEmailPassword)
	ErrInvalidRefreshToken    = sharedError.NewDomainError(invalidRefreshToken)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectEmailPassword, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-003",
		Message: "이메일 또는 비밀번호가 잘못되었습니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidRefreshToken, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-004",
		Message: "유효하지 않은 갱신 토큰입니다.",
	})
}
