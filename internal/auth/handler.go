package auth

import (
	"github.com/boracay-silvertown/go-api-server/internal/activity"
	sharedError "github.com/boracay-silvertown/go-api-server/internal/shared/error"
	"github.com/boracay-silvertown/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *AuthService
}

func NewAuthHandler(authService *AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func requestMeta(c *gin.Context) activity.RequestMeta {
	return activity.RequestMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

func (a *AuthHandler) Register(c *gin.Context) {
	var request RegisterRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	result, err := a.authService.Register(c.Request.Context(), &request, requestMeta(c))
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "회원가입이 완료되었습니다.", gin.H{
		"token":         result.Token,
		"refresh_token": result.RefreshToken,
		"member":        result.Member,
	})
}

func (a *AuthHandler) Login(c *gin.Context) {
	var request LoginRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	result, err := a.authService.Login(c.Request.Context(), &request, requestMeta(c))
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "로그인이 완료되었습니다.", gin.H{
		"token":         result.Token,
		"refresh_token": result.RefreshToken,
		"member":        result.Member,
	})
}

func (a *AuthHandler) Refresh(c *gin.Context) {
	var request RefreshRequest

	if !handler.BindJSON(c, &request) {
		return
	}

	result, err := a.authService.Refresh(c.Request.Context(), &request)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	handler.OK(c, "토큰이 갱신되었습니다.", gin.H{
		"token":         result.Token,
		"refresh_token": result.RefreshToken,
		"member":        result.Member,
	})
}
