package context

import (
	"net/http"
	"strconv"

	sharedError "github.com/boracay-silvertown/go-api-server/internal/shared/error"
	"github.com/boracay-silvertown/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// Context keys for storing user authentication information
const (
	MemberIDKey    = "member_id"
	MemberEmailKey = "member_email"
	MemberRoleKey  = "member_role"
)

func GetMemberID(c *gin.Context) (uint32, bool) {
	memberID, exists := c.Get(MemberIDKey)
	if !exists {
		return 0, false
	}

	idStr, ok := memberID.(string)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(id), true
}

// GetMemberRole returns the authenticated member's role from the Gin context.
func GetMemberRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(MemberRoleKey)
	if !exists {
		return "", false
	}

	roleStr, ok := role.(string)
	if !ok {
		return "", false
	}

	return roleStr, true
}

// RequireMemberID retrieves the authenticated user's ID from the Gin context.
// If the user ID is not found, automatically sends an authentication error response.
// Returns the user ID and true if found, zero and false if not found (error already sent).
// Use this in most handlers to reduce boilerplate.
func RequireMemberID(c *gin.Context) (uint32, bool) {
	memberID, ok := GetMemberID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-000",
			Message: "로그인이 필요합니다.",
		})
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] context에 회원 ID가 존재하지 않습니다.")
		return 0, false
	}
	return memberID, true
}

// OptionalMemberID returns a pointer to the member ID when a valid token was
// presented, or nil for anonymous requests. Used by endpoints that accept
// both authenticated and unauthenticated submissions.
func OptionalMemberID(c *gin.Context) *uint32 {
	memberID, ok := GetMemberID(c)
	if !ok {
		return nil
	}
	return &memberID
}
