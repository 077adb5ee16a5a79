package handlers

import (
	"net/http"

	"zapbytes/pkg/logger"
	"zapbytes/pkg/models"
	"zapbytes/pkg/store"

	"github.com/gin-gonic/gin"
)

// GetStatus returns the overall system status
// @Summary Get system status
// @Description Returns system information including service running status and scheduler status
// @Tags System Management
// @Accept json
// @Produce json
// @Success 200 {object} models.SystemStatus
// @Router /system/status [get]
func (h *HandlerService) GetStatus(c *gin.Context) {
	status := map[string]interface{}{
		"service":   "zapbytes",
		"version":   "1.0.0",
		"status":    "running",
		"timestamp": getCurrentTimestamp(),
	}

	if h.scheduler != nil {
		status["scheduler"] = h.scheduler.GetStatus()
	}

	c.JSON(http.StatusOK, status)
}

// GetAppConfig returns the current configuration (sensitive data masked)
// @Summary Get system configuration
// @Description Returns system configuration information with sensitive data masked
// @Tags System Management
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /system/config [get]
func (h *HandlerService) GetAppConfig(c *gin.Context) {
	// Return a sanitized version of the config without sensitive information
	sanitizedConfig := h.sanitizeConfig()
	c.JSON(http.StatusOK, sanitizedConfig)
}

// UpdateLogLevel changes the logging level at runtime
// @Summary Update log level
// @Description Adjusts the runtime logging level without a restart (debug, info, warn, error)
// @Tags System Management
// @Accept json
// @Produce json
// @Param request body models.LogLevelRequest true "New log level"
// @Success 200 {object} models.LogLevelResponse
// @Failure 400 {object} models.ErrorResponse "Unknown log level"
// @Router /system/loglevel [put]
func (h *HandlerService) UpdateLogLevel(c *gin.Context) {
	var req models.LogLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, NewBadRequestError("Invalid request body", err))
		return
	}

	previous := logger.GetLogLevel()
	if err := logger.SetLogLevel(req.Level); err != nil {
		HandleError(c, NewBadRequestError("Unknown log level: "+req.Level, err))
		return
	}

	c.JSON(http.StatusOK, models.LogLevelResponse{
		PreviousLevel: previous,
		CurrentLevel:  logger.GetLogLevel(),
	})
}

// HealthCheck performs a comprehensive health check
// @Summary Perform health check
// @Description Perform system health check including visitor store access, scheduler status and configuration (Note: this endpoint is not under /api/v1 path)
// @Tags Health Check
// @Accept json
// @Produce json
// @Success 200 {object} models.HealthResponse "Health check passed"
// @Failure 503 {object} models.ErrorResponse "Service unhealthy"
// @Router /health [get]
// @BasePath /
func (h *HandlerService) HealthCheck(c *gin.Context) {
	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": getCurrentTimestamp(),
		"checks": map[string]interface{}{
			"store":     h.checkStoreHealth(c),
			"scheduler": h.checkSchedulerHealth(),
			"config":    h.checkConfigHealth(),
		},
	}

	// Determine overall health status
	allHealthy := true
	checks := health["checks"].(map[string]interface{})
	for _, check := range checks {
		if checkMap, ok := check.(map[string]interface{}); ok {
			if status, exists := checkMap["status"]; exists && status == "unhealthy" {
				allHealthy = false
				break
			}
		}
	}

	if !allHealthy {
		health["status"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	c.JSON(http.StatusOK, health)
}

// checkStoreHealth checks visitor store health status
func (h *HandlerService) checkStoreHealth(c *gin.Context) map[string]interface{} {
	if h.store == nil {
		return map[string]interface{}{
			"status": "unhealthy",
			"error":  "visitor store not initialized",
		}
	}

	// A probe read against a reserved visitor exercises the backend
	if _, err := h.store.Has(c.Request.Context(), "healthcheck", store.KeyUserLocation); err != nil {
		return map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		}
	}

	return map[string]interface{}{
		"status": "healthy",
	}
}

// checkSchedulerHealth checks scheduler health status
func (h *HandlerService) checkSchedulerHealth() map[string]interface{} {
	if h.scheduler == nil {
		return map[string]interface{}{
			"status": "unavailable",
			"error":  "scheduler not initialized",
		}
	}

	status := h.scheduler.GetStatus()
	return map[string]interface{}{
		"status":     "healthy",
		"details":    status,
		"is_running": status != nil,
	}
}

// checkConfigHealth checks configuration health status
func (h *HandlerService) checkConfigHealth() map[string]interface{} {
	if h.config == nil {
		return map[string]interface{}{
			"status": "unhealthy",
			"error":  "configuration not loaded",
		}
	}

	// Check critical configuration items
	issues := []string{}

	if h.config.GetSinkConfig().WebhookURL == "" {
		issues = append(issues, "Sink webhook URL not configured, submissions will fail")
	}

	if h.config.GetGeocoderConfig().BaseURL == "" {
		issues = append(issues, "Geocoder base URL not configured")
	}

	if len(issues) > 0 {
		return map[string]interface{}{
			"status": "degraded",
			"issues": issues,
		}
	}

	return map[string]interface{}{
		"status":        "healthy",
		"config_loaded": true,
	}
}
