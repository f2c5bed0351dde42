package handler

import (
	"net/http"
	"strconv"

	"buddyboard/internal/middleware"
	"buddyboard/internal/service"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	svc *service.StudentService
}

type CreateStudentReq struct {
	FirstName     string  `json:"first_name" binding:"required,max=64"`
	LastName      string  `json:"last_name" binding:"required,max=64"`
	ParentID      uint64  `json:"parent_id" binding:"required"`
	AMTherapistID uint64  `json:"am_therapist_id" binding:"required"`
	PMTherapistID uint64  `json:"pm_therapist_id" binding:"required"`
	BCBAID        *uint64 `json:"bcba_id"`
}

func NewStudentHandler(svc *service.StudentService) *StudentHandler {
	return &StudentHandler{svc: svc}
}

// Create registers a student. Admin-only route.
func (h *StudentHandler) Create(c *gin.Context) {
	var req CreateStudentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	student, err := h.svc.Create(req.FirstName, req.LastName, req.ParentID, req.AMTherapistID, req.PMTherapistID, req.BCBAID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": student.ID})
}

// List returns the roster visible to the requester.
func (h *StudentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	list, err := h.svc.List(middleware.Requester(c), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

// Get returns one student the requester may see; anything else is 404 so the
// roster does not leak which ids exist.
func (h *StudentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid student id"})
		return
	}

	student, err := h.svc.Get(middleware.Requester(c), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
		return
	}
	c.JSON(http.StatusOK, student)
}
