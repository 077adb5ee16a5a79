package handlers

import (
	"errors"
	"net/http"

	"zapbytes/pkg/response"
	"zapbytes/pkg/scheduler"

	"github.com/gin-gonic/gin"
)

// GetSchedulerStatus returns scheduler status
// @Summary Get scheduler status
// @Description Returns the running state of the background sweep scheduler
// @Tags Scheduler
// @Accept json
// @Produce json
// @Success 200 {object} models.SchedulerStatus
// @Failure 503 {object} models.ErrorResponse
// @Router /scheduler/status [get]
func (h *HandlerService) GetSchedulerStatus(c *gin.Context) {
	if !h.IsSchedulerAvailable() {
		response.Unavailable(c, "Scheduler not available", nil)
		return
	}

	c.JSON(http.StatusOK, h.scheduler.GetStatus())
}

// GetScheduledJobs returns all scheduled jobs
// @Summary Get scheduled jobs
// @Description Returns all configured background jobs with their next and last run times
// @Tags Scheduler
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} models.ErrorResponse
// @Router /scheduler/jobs [get]
func (h *HandlerService) GetScheduledJobs(c *gin.Context) {
	if !h.IsSchedulerAvailable() {
		response.Unavailable(c, "Scheduler not available", nil)
		return
	}

	jobs := h.scheduler.GetJobs()
	c.JSON(http.StatusOK, gin.H{
		"jobs":      jobs,
		"count":     len(jobs),
		"timestamp": getCurrentTimestamp(),
	})
}

// GetScheduledJob returns a single scheduled job by ID
// @Summary Get a scheduled job
// @Description Returns one background job with its next and last run times
// @Tags Scheduler
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /scheduler/jobs/{id} [get]
func (h *HandlerService) GetScheduledJob(c *gin.Context) {
	if !h.IsSchedulerAvailable() {
		response.Unavailable(c, "Scheduler not available", nil)
		return
	}

	job, err := h.scheduler.GetJob(c.Param("id"))
	if err != nil {
		if errors.Is(err, scheduler.ErrJobNotFound) {
			response.NotFound(c, "Job not found")
			return
		}
		HandleError(c, NewInternalServerError("Failed to read job", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job":       job,
		"timestamp": getCurrentTimestamp(),
	})
}

// DeleteScheduledJob removes a scheduled job
// @Summary Remove a scheduled job
// @Description Unschedules a background job. Intended for operations use; jobs defined in configuration return on the next restart.
// @Tags Scheduler
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /scheduler/jobs/{id} [delete]
func (h *HandlerService) DeleteScheduledJob(c *gin.Context) {
	if !h.IsSchedulerAvailable() {
		response.Unavailable(c, "Scheduler not available", nil)
		return
	}

	if err := h.scheduler.RemoveJob(c.Param("id")); err != nil {
		if errors.Is(err, scheduler.ErrJobNotFound) {
			response.NotFound(c, "Job not found")
			return
		}
		HandleError(c, NewInternalServerError("Failed to remove job", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job removed",
	})
}

// TriggerSweep runs the abandonment sweep immediately
// @Summary Trigger an abandonment sweep
// @Description Runs the fallback sweep outside its schedule. Intended for operations use.
// @Tags Scheduler
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /scheduler/sweep [post]
func (h *HandlerService) TriggerSweep(c *gin.Context) {
	count, err := h.abandon.Sweep(c.Request.Context())
	if err != nil {
		HandleError(c, NewInternalServerError("Sweep failed", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":               "completed",
		"fallbacks_dispatched": count,
		"timestamp":            getCurrentTimestamp(),
	})
}
