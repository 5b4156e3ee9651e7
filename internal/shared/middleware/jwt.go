package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/boracay-silvertown/go-api-server/internal/config"
	sharedContext "github.com/boracay-silvertown/go-api-server/internal/shared/context"
	sharedError "github.com/boracay-silvertown/go-api-server/internal/shared/error"
	"github.com/boracay-silvertown/go-api-server/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

// JWT error constants (errInfo)
const (
	missingToken  = "MISSING_TOKEN"
	invalidToken  = "INVALID_TOKEN"
	expiredToken  = "EXPIRED_TOKEN"
	invalidClaims = "INVALID_CLAIMS"
	forbiddenRole = "FORBIDDEN_ROLE"
)

// Domain errors
var (
	ErrMissingToken  = sharedError.NewDomainError(missingToken)
	ErrInvalidToken  = sharedError.NewDomainError(invalidToken)
	ErrExpiredToken  = sharedError.NewDomainError(expiredToken)
	ErrInvalidClaims = sharedError.NewDomainError(invalidClaims)
	ErrForbiddenRole = sharedError.NewDomainError(forbiddenRole)
)

// Register JWT error responses
func init() {
	unauthorized := sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-000",
		Message: "로그인이 필요합니다.",
	}

	sharedError.RegisterDomainErrorResponse(missingToken, unauthorized)
	sharedError.RegisterDomainErrorResponse(invalidToken, unauthorized)
	sharedError.RegisterDomainErrorResponse(expiredToken, unauthorized)
	sharedError.RegisterDomainErrorResponse(invalidClaims, unauthorized)

	sharedError.RegisterDomainErrorResponse(forbiddenRole, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "AUTH-001",
		Message: "관리자 권한이 필요합니다.",
	})
}

func JWT(cfg *config.Config) gin.HandlerFunc {
	return JWTWithManager(token.NewJWTManager(cfg))
}

// JWTWithManager authenticates requests with an explicit token manager.
// Tests inject a mock manager through this variant.
func JWTWithManager(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 요청 정보 (로깅용)
		clientIP := c.ClientIP()
		method := c.Request.Method
		path := c.Request.URL.Path
		userAgent := c.Request.UserAgent()

		// Step 1: 토큰 추출
		rawToken, err := extractToken(c)
		if err != nil {
			slog.Warn("JWT 토큰 추출 실패",
				"step", "extract_token",
				"error", err.Error(),
				"client_ip", clientIP,
				"method", method,
				"path", path,
				"user_agent", userAgent,
			)
			handleJWTError(c, err)
			return
		}

		// Step 2: 토큰 검증
		claims, err := tokenManager.ValidateToken(rawToken)
		if err != nil {
			slog.Warn("JWT 토큰 검증 실패",
				"step", "validate_token",
				"error", err.Error(),
				"client_ip", clientIP,
				"method", method,
				"path", path,
				"user_agent", userAgent,
			)
			handleJWTError(c, mapTokenError(err))
			return
		}

		// Refresh 토큰으로는 API 접근 불가
		if claims.TokenType != token.ACCESS {
			handleJWTError(c, ErrInvalidToken)
			return
		}

		// 인증 성공 - Context에 사용자 정보 저장
		c.Set(sharedContext.MemberIDKey, claims.MemberID)
		c.Set(sharedContext.MemberEmailKey, claims.Email)
		c.Set(sharedContext.MemberRoleKey, claims.Role)
		c.Next()
	}
}

// OptionalJWT resolves a bearer token when present but never rejects the
// request. Endpoints like inquiry submission attribute the member when a
// valid token is supplied and accept anonymous submissions otherwise.
func OptionalJWT(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, err := extractToken(c)
		if err != nil {
			c.Next()
			return
		}

		claims, err := tokenManager.ValidateToken(rawToken)
		if err != nil || claims.TokenType != token.ACCESS {
			c.Next()
			return
		}

		c.Set(sharedContext.MemberIDKey, claims.MemberID)
		c.Set(sharedContext.MemberEmailKey, claims.Email)
		c.Set(sharedContext.MemberRoleKey, claims.Role)
		c.Next()
	}
}

// AdminOnly allows only members whose role is admin or manager.
// Must run after JWT authentication; unauthenticated requests already fail
// there with 401, so a role mismatch here is always 403.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := sharedContext.GetMemberRole(c)
		if !ok {
			handleJWTError(c, ErrMissingToken)
			return
		}

		if role != "admin" && role != "manager" {
			slog.Warn("관리자 권한 없는 접근 차단",
				"role", role,
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
			)
			handleJWTError(c, ErrForbiddenRole)
			return
		}

		c.Next()
	}
}

// handleJWTError handles JWT errors using the standardized error response format
// Note: Logging is done at the point of error detection
func handleJWTError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		c.JSON(resp.Status, resp)
	} else {
		// 예상치 못한 에러 → Fallback 응답
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-999",
			Message: "인증에 실패했습니다.",
		})
	}
	c.Abort()
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}
