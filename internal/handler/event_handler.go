package handler

import (
	"net/http"
	"strconv"
	"time"

	"buddyboard/internal/middleware"
	"buddyboard/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	svc *service.EventService
}

type CreateEventReq struct {
	StudentID uint64    `json:"student_id" binding:"required"`
	Title     string    `json:"title" binding:"required,max=200"`
	Notes     string    `json:"notes"`
	StartsAt  time.Time `json:"starts_at" binding:"required"`
	EndsAt    time.Time `json:"ends_at" binding:"required"`
}

func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	event, err := h.svc.Create(middleware.Requester(c), req.StudentID, req.Title, req.Notes, req.StartsAt, req.EndsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": event.ID})
}

// List returns a student's calendar for a window; defaults to the next 30
// days.
func (h *EventHandler) List(c *gin.Context) {
	studentID, err := strconv.ParseUint(c.Query("student_id"), 10, 64)
	if err != nil || studentID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid student id"})
		return
	}

	from := time.Now()
	to := from.AddDate(0, 0, 30)
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid from"})
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid to"})
			return
		}
		to = t
	}

	list, err := h.svc.List(middleware.Requester(c), studentID, from, to)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *EventHandler) Delete(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || eventID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid event id"})
		return
	}

	if err := h.svc.Delete(middleware.Requester(c), eventID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}
