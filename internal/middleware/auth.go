package middleware

import (
	"net/http"
	"strings"

	"Haven_Community/internal/pkg"
	"Haven_Community/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const ContextAccountIDKey = "account_id"

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
		sessionRepo := &redis.SessionRepository{}

		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token"})
			c.Abort()
			return
		}

		// redis校验是否是最近一次签发的token
		originToken, err := sessionRepo.GetSessionToken(claims.AccountID)
		if err != nil || originToken != tokenStr {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Account has been logging elsewhere"})
			c.Abort()
			return
		}

		// 校验通过后更新过期时间
		if err = sessionRepo.ExtendSessionToken(claims.AccountID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		c.Set(ContextAccountIDKey, claims.AccountID)
		c.Next()
	}
}

// OptionalAuthMiddleware 给读接口用：带合法token就注入身份，
// 不带身份也放行（未登录 account_id=0，由可见性引擎决定能看什么）
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}
		claims, err := pkg.ParseAccess(parts[1])
		if err != nil {
			c.Next()
			return
		}
		sessionRepo := &redis.SessionRepository{}
		originToken, err := sessionRepo.GetSessionToken(claims.AccountID)
		if err != nil || originToken != parts[1] {
			c.Next()
			return
		}
		c.Set(ContextAccountIDKey, claims.AccountID)
		c.Next()
	}
}

// AccountID 读出注入的账号id，未登录返回0
func AccountID(c *gin.Context) uint64 {
	v, ok := c.Get(ContextAccountIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(uint64)
	return id
}
