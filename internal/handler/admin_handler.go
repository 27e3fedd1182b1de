package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/isowyrm/isowyrm/internal/repository"
	"github.com/isowyrm/isowyrm/pkg/response"
)

// AdminHandler handles authenticated maintenance endpoints.
type AdminHandler struct {
	repo *repository.ActivityRepository
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(repo *repository.ActivityRepository) *AdminHandler {
	return &AdminHandler{repo: repo}
}

// PurgeCache handles POST /api/v1/admin/cache/purge
func (h *AdminHandler) PurgeCache(c *gin.Context) {
	purged, err := h.repo.Purge()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"purged": purged})
}
