package handler

import (
	"net/http"
	"strconv"
	"time"

	"buddyboard/internal/middleware"
	"buddyboard/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

type CreatePostReq struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Body        string     `json:"body"`
	Unpublished bool       `json:"unpublished"`
	PublishAt   *time.Time `json:"publish_at"`
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// Create stores a board post; the response says whether it went live or was
// held for review.
func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	post, err := h.svc.Create(middleware.Requester(c), req.Title, req.Body, req.Unpublished, req.PublishAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": post.ID, "published": post.Published, "held": post.Held})
}

// List returns the published feed, cursor-paginated.
func (h *PostHandler) List(c *gin.Context) {
	var lastID uint64
	var lastTS int64
	if v := c.Query("last_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid last_id"})
			return
		}
		lastID = id
	}
	if v := c.Query("last_created_at"); v != "" {
		ts, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid last_created_at"})
			return
		}
		lastTS = ts
	}
	size, _ := strconv.Atoi(c.Query("size"))

	list, nextID, nextTS, err := h.svc.ListPublished(lastID, lastTS, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"list":            list,
		"next_last_id":    nextID,
		"next_created_at": nextTS,
	})
}

// Pending is the admin review queue.
func (h *PostHandler) Pending(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	list, err := h.svc.ListPending(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *PostHandler) Approve(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}

	changed, err := h.svc.Approve(c.Request.Context(), middleware.Requester(c).ID, postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "approve failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

func (h *PostHandler) Reject(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return
	}

	if err := h.svc.Reject(c.Request.Context(), middleware.Requester(c).ID, postID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "reject failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "rejected"})
}
