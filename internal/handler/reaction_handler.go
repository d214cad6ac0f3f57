package handler

import (
	"net/http"
	"strconv"

	"Haven_Community/internal/middleware"
	"Haven_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct {
	svc *service.ReactionService
}

func NewReactionHandler(svc *service.ReactionService) *ReactionHandler {
	return &ReactionHandler{svc: svc}
}

// Toggle 点赞开关，返回 toggle 后的状态
func (h *ReactionHandler) Toggle(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}

	liked, err := h.svc.Toggle(c.Request.Context(), middleware.AccountID(c), postID)
	if err != nil {
		replyErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

func (h *ReactionHandler) Status(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}

	liked, err := h.svc.IsLiked(c.Request.Context(), middleware.AccountID(c), postID)
	if err != nil {
		replyErr(c, err)
		return
	}
	count, err := h.svc.LikeCount(c.Request.Context(), postID)
	if err != nil {
		replyErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked, "count": count})
}
