package handler

import (
	"net/http"
	"strconv"

	"buddyboard/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the settings and moderation-override screens.
type AdminHandler struct {
	svc *service.SettingsService
}

type UpdateSettingReq struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type SetOverrideReq struct {
	Required bool `json:"required"`
}

func NewAdminHandler(svc *service.SettingsService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	values, err := h.svc.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": values})
}

func (h *AdminHandler) UpdateSetting(c *gin.Context) {
	var req UpdateSettingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Update(req.Key, req.Value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// SetOverride forces (or releases) review for every post by one author.
func (h *AdminHandler) SetOverride(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid user id"})
		return
	}

	var req SetOverrideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.SetOverride(userID, req.Required); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
