package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/tuyendunghub/job-board/internal/logger"
	"github.com/tuyendunghub/job-board/internal/services"
)

type JobHandler struct {
	jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// parseListParams tolerates malformed page/limit values: they fall back to
// defaults in the service instead of erroring.
func parseListParams(c *gin.Context) services.ListParams {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	return services.ListParams{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		JobType:  c.Query("job_type"),
		Page:     page,
		Limit:    limit,
	}
}

func parseJobID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidJobID})
		return 0, false
	}
	return uint(id), true
}

func listResponse(page *services.JobPage, withNavFlags bool) gin.H {

	pagination := gin.H{
		"page":       page.Page,
		"limit":      page.Limit,
		"total":      page.Total,
		"totalPages": page.TotalPages,
	}
	if withNavFlags {
		pagination["hasNext"] = page.HasNext()
		pagination["hasPrev"] = page.HasPrev()
	}

	return gin.H{"jobs": page.Jobs, "pagination": pagination}
}

func (h *JobHandler) PublicList(c *gin.Context) {

	page, err := h.jobs.PublicList(c.Request.Context(), parseListParams(c))
	if err != nil {
		internalError(c, logger.ErrorTypeDb, err)
		return
	}

	c.JSON(http.StatusOK, listResponse(page, true))
}

func (h *JobHandler) AdminList(c *gin.Context) {

	params := parseListParams(c)
	params.Location, params.JobType = "", "" // admin listing supports search only

	page, err := h.jobs.AdminList(c.Request.Context(), params)
	if err != nil {
		internalError(c, logger.ErrorTypeDb, err)
		return
	}

	c.JSON(http.StatusOK, listResponse(page, false))
}

func (h *JobHandler) PublicGet(c *gin.Context) {

	id, ok := parseJobID(c)
	if !ok {
		return
	}

	job, err := h.jobs.PublicGet(c.Request.Context(), id)
	if err != nil {
		h.handleJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *JobHandler) AdminGet(c *gin.Context) {

	id, ok := parseJobID(c)
	if !ok {
		return
	}

	job, err := h.jobs.AdminGet(c.Request.Context(), id)
	if err != nil {
		h.handleJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *JobHandler) Create(c *gin.Context) {

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindingErrorMessage(err)})
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleJobError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msgJobCreated, "job": job})
}

func (h *JobHandler) Update(c *gin.Context) {

	id, ok := parseJobID(c)
	if !ok {
		return
	}

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindingErrorMessage(err)})
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.handleJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgJobUpdated, "job": job})
}

func (h *JobHandler) Delete(c *gin.Context) {

	id, ok := parseJobID(c)
	if !ok {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), id); err != nil {
		h.handleJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgJobDeleted})
}

func (h *JobHandler) Toggle(c *gin.Context) {

	id, ok := parseJobID(c)
	if !ok {
		return
	}

	job, err := h.jobs.Toggle(c.Request.Context(), id)
	if err != nil {
		h.handleJobError(c, err)
		return
	}

	message := msgJobDeactivated
	if job.IsActive {
		message = msgJobActivated
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "job": job})
}

func (h *JobHandler) handleJobError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": msgJobNotFound})
	case errors.Is(err, services.ErrSalaryRange):
		c.JSON(http.StatusBadRequest, gin.H{"message": msgSalaryRange})
	default:
		internalError(c, logger.ErrorTypeDb, err)
	}
}
