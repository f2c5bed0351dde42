package middleware

import (
	"net/http"
	"strings"

	"buddyboard/internal/pkg"
	"buddyboard/internal/policy"
	"buddyboard/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "user_id"
	ContextRoleKey   = "role"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid authorization format"})
			c.Abort()
			return
		}

		tokenStr := parts[1]
		sessionRep := &redis.SessionRepository{}

		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token"})
			c.Abort()
			return
		}

		// single active session per account
		originToken, err := sessionRep.GetUserToken(claims.UserID)
		if err != nil || originToken != tokenStr {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "account has been logged in elsewhere"})
			c.Abort()
			return
		}

		if err = sessionRep.ExtendUserToken(claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole guards a route group to the listed roles. Runs after
// AuthMiddleware.
func RequireRole(roles ...policy.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleStr, _ := c.Get(ContextRoleKey)
		role, _ := roleStr.(string)
		for _, want := range roles {
			if policy.Role(role) == want {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "forbidden"})
	}
}

// Requester rebuilds the policy requester from the request context.
func Requester(c *gin.Context) policy.Requester {
	var req policy.Requester
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok2 := v.(uint64); ok2 {
			req.ID = id
		}
	}
	if v, ok := c.Get(ContextRoleKey); ok {
		if role, ok2 := v.(string); ok2 {
			req.Role = policy.Role(role)
		}
	}
	return req
}
