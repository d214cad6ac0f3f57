package handler

import (
	"errors"
	"net/http"

	"Haven_Community/internal/authz"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// replyErr 决策引擎的类型化拒绝统一映射状态码
func replyErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authz.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
	case errors.Is(err, authz.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
	case errors.Is(err, authz.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"msg": "forbidden"})
	case errors.Is(err, authz.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"msg": "conflict"})
	case errors.Is(err, authz.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"msg": "upstream failure"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	}
}
