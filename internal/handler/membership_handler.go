package handler

import (
	"net/http"
	"strconv"

	"Haven_Community/internal/middleware"
	"Haven_Community/internal/model"
	"Haven_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	svc *service.MembershipService
}

type SetRoleReq struct {
	TargetID uint64 `json:"target_id" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=member moderator"`
}

type RemoveReq struct {
	TargetID uint64 `json:"target_id" binding:"required"`
}

type PremiumPublishReq struct {
	TargetID uint64 `json:"target_id" binding:"required"`
	Allowed  *bool  `json:"allowed" binding:"required"`
}

func NewMembershipHandler(svc *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{svc: svc}
}

func (h *MembershipHandler) Join(c *gin.Context) {
	communityID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || communityID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid community id"})
		return
	}

	if err := h.svc.Join(c.Request.Context(), middleware.AccountID(c), communityID); err != nil {
		replyErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *MembershipHandler) Leave(c *gin.Context) {
	communityID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || communityID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid community id"})
		return
	}

	if err := h.svc.Leave(c.Request.Context(), middleware.AccountID(c), communityID); err != nil {
		replyErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// SetRole 创建者给成员升降级；设成当前角色是无动作的成功
func (h *MembershipHandler) SetRole(c *gin.Context) {
	communityID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || communityID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid community id"})
		return
	}
	var req SetRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	role := model.RoleMember
	if req.Role == "moderator" {
		role = model.RoleModerator
	}

	if err := h.svc.SetRole(c.Request.Context(), middleware.AccountID(c), communityID, req.TargetID, role); err != nil {
		replyErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *MembershipHandler) Remove(c *gin.Context) {
	communityID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || communityID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid community id"})
		return
	}
	var req RemoveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Remove(c.Request.Context(), middleware.AccountID(c), communityID, req.TargetID); err != nil {
		replyErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// SetPremiumPublish 创建者给版主开/关付费发布权
func (h *MembershipHandler) SetPremiumPublish(c *gin.Context) {
	communityID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || communityID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid community id"})
		return
	}
	var req PremiumPublishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.SetPremiumPublish(c.Request.Context(), middleware.AccountID(c), communityID, req.TargetID, *req.Allowed); err != nil {
		replyErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
