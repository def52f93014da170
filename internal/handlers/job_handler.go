package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes регистрирует публичные маршруты вакансий.
// Роутер gin не допускает статический сегмент рядом с ':id', поэтому
// /jobs/entry-level и /jobs/city/:city диспетчеризуются внутри
// параметрических маршрутов.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	jobs.GET("", h.List)
	jobs.GET("/:id", h.Get)
	jobs.GET("/:id/:city", h.GetByCity)
}

func (h *JobHandler) List(c *gin.Context) {
	listings, err := h.jobService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.writeListings(c, listings)
}

// Get отдает либо подборку entry-level вакансий, либо детали по ID
func (h *JobHandler) Get(c *gin.Context) {
	id := c.Param("id")

	if id == "entry-level" {
		listings, err := h.jobService.ListEntryLevel(c.Request.Context())
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		h.writeListings(c, listings)
		return
	}

	details, err := h.jobService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"job":     details,
	})
}

// GetByCity обслуживает /jobs/city/:city
func (h *JobHandler) GetByCity(c *gin.Context) {
	if c.Param("id") != "city" {
		apperrors.HandleError(c, apperrors.ErrJobNotFound)
		return
	}

	listings, err := h.jobService.ListByCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.writeListings(c, listings)
}

func (h *JobHandler) writeListings(c *gin.Context, listings []dto.JobListing) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(listings),
		"jobs":    listings,
	})
}
