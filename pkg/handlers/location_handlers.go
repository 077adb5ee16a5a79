package handlers

import (
	"net/http"

	"zapbytes/pkg/models"

	"github.com/gin-gonic/gin"
)

// CaptureLocation resolves and caches the visitor's coordinates
// @Summary Capture visitor location
// @Description Reverse geocodes the submitted coordinates and caches the result per visitor. A location already cached for the visitor is returned unchanged. Geocoding failures degrade gracefully, nothing is cached and the page flow continues.
// @Tags Location
// @Accept json
// @Produce json
// @Param X-Visitor-ID header string true "Visitor identity"
// @Param request body models.LocationCaptureRequest true "Coordinates from the browser geolocation API"
// @Success 200 {object} models.LocationCaptureResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /location [post]
func (h *HandlerService) CaptureLocation(c *gin.Context) {
	id, err := visitorID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	var req models.LocationCaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, NewBadRequestError("Invalid request body", err))
		return
	}

	record, _, err := h.location.Capture(c.Request.Context(), id, *req.Latitude, *req.Longitude)
	if err != nil {
		// Location capture is opportunistic. The lookup failure is
		// reported as a non-save rather than an error so the page
		// flow continues.
		c.JSON(http.StatusOK, models.LocationCaptureResponse{Saved: false})
		return
	}

	c.JSON(http.StatusOK, models.LocationCaptureResponse{
		Saved:   true,
		City:    record.City,
		State:   record.State,
		Country: record.Country,
	})
}
