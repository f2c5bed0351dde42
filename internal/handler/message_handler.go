package handler

import (
	"net/http"
	"strconv"

	"buddyboard/internal/middleware"
	"buddyboard/internal/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	svc *service.MessageService
}

type SendMessageReq struct {
	RecipientID uint64 `json:"recipient_id" binding:"required"`
	Subject     string `json:"subject" binding:"max=200"`
	Body        string `json:"body" binding:"required"`
}

func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req SendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	msg, err := h.svc.Send(c.Request.Context(), middleware.Requester(c), req.RecipientID, req.Subject, req.Body)
	if err != nil {
		if err == service.ErrNotConnected {
			c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": msg.ID})
}

func (h *MessageHandler) Inbox(c *gin.Context) {
	cursor, _ := strconv.ParseUint(c.Query("cursor"), 10, 64)
	limit, _ := strconv.Atoi(c.Query("limit"))

	rows, next, err := h.svc.Inbox(c.Request.Context(), middleware.Requester(c).ID, cursor, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": rows, "next_cursor": next})
}

func (h *MessageHandler) Sent(c *gin.Context) {
	cursor, _ := strconv.ParseUint(c.Query("cursor"), 10, 64)
	limit, _ := strconv.Atoi(c.Query("limit"))

	rows, next, err := h.svc.Sent(c.Request.Context(), middleware.Requester(c).ID, cursor, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": rows, "next_cursor": next})
}

// MarkRead stamps a received message as read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	msgID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || msgID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid message id"})
		return
	}

	if err := h.svc.MarkRead(c.Request.Context(), middleware.Requester(c).ID, msgID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
