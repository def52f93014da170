package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SavedJobsHandler struct {
	*BaseHandler
	savedJobsService services.SavedJobsService
}

func NewSavedJobsHandler(base *BaseHandler, savedJobsService services.SavedJobsService) *SavedJobsHandler {
	return &SavedJobsHandler{
		BaseHandler:      base,
		savedJobsService: savedJobsService,
	}
}

// RegisterRoutes регистрирует защищенные маршруты закладок.
// Группа должна быть обернута в AuthMiddleware.
func (h *SavedJobsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/save-jobs/:jobId", h.Save)
	rg.GET("/saved-jobs", h.List)
	rg.DELETE("/saved-jobs/:jobId", h.Remove)
}

func (h *SavedJobsHandler) Save(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.savedJobsService.Save(c.Request.Context(), userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SavedJobsHandler) List(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.savedJobsService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SavedJobsHandler) Remove(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	resp, err := h.savedJobsService.Remove(c.Request.Context(), userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
