package handler

import (
	"net/http"
	"strconv"
	"time"

	"buddyboard/internal/middleware"
	"buddyboard/internal/policy"
	"buddyboard/internal/service"

	"github.com/gin-gonic/gin"
)

type DailyLogHandler struct {
	svc *service.DailyLogService
}

type CreateLogReq struct {
	StudentID  uint64 `json:"student_id" binding:"required"`
	Visibility string `json:"visibility" binding:"required,oneof=STAFF PARENT"`
	Body       string `json:"body" binding:"required"`
	LogDate    string `json:"log_date" binding:"required"` // YYYY-MM-DD
}

func NewDailyLogHandler(svc *service.DailyLogService) *DailyLogHandler {
	return &DailyLogHandler{svc: svc}
}

func (h *DailyLogHandler) Create(c *gin.Context) {
	var req CreateLogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	logDate, err := time.Parse("2006-01-02", req.LogDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid log_date"})
		return
	}

	entry, err := h.svc.Create(middleware.Requester(c), req.StudentID, policy.LogVisibility(req.Visibility), req.Body, logDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": entry.ID})
}

func (h *DailyLogHandler) List(c *gin.Context) {
	studentID, err := strconv.ParseUint(c.Query("student_id"), 10, 64)
	if err != nil || studentID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid student id"})
		return
	}
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	list, err := h.svc.List(middleware.Requester(c), studentID, page, size)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *DailyLogHandler) Get(c *gin.Context) {
	logID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || logID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid log id"})
		return
	}

	entry, err := h.svc.Get(middleware.Requester(c), logID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}
