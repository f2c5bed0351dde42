package handler

import (
	"net/http"

	"buddyboard/internal/policy"
	"buddyboard/internal/repository/redis"
	"buddyboard/internal/service"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	svc *service.EmailService
}

type SendInviteReq struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=ADMIN THERAPIST PARENT"`
}

type SendResetReq struct {
	Email string `json:"email" binding:"required,email"`
}

func NewEmailHandler(svc *service.EmailService) *EmailHandler {
	return &EmailHandler{svc: svc}
}

// SendInvite mails an account invite. Admin-only route: invites decide the
// new account's role.
func (h *EmailHandler) SendInvite(c *gin.Context) {
	var req SendInviteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.SendInvite(req.Email, policy.Role(req.Role)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "invite sent"})
}

// SendCode mails a verification code for the requested scope. Only the reset
// scope is open without auth; invites go through SendInvite.
func (h *EmailHandler) SendCode(c *gin.Context) {
	scope := c.Param("scope")
	if scope != redis.ScopeReset {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid scope"})
		return
	}

	var req SendResetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.SendResetCode(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "send code successfully"})
}
