package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"zapbytes/pkg/models"
	"zapbytes/pkg/store"

	"github.com/gin-gonic/gin"
)

// GetSession returns the visitor's cached session state
// @Summary Get session state
// @Description Returns the per-visitor flags the landing page uses to decide which prompts to show: cached location, submission markers, and CTA dismissal.
// @Tags Session
// @Accept json
// @Produce json
// @Param X-Visitor-ID header string true "Visitor identity"
// @Success 200 {object} models.SessionStateResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /session [get]
func (h *HandlerService) GetSession(c *gin.Context) {
	id, err := visitorID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	ctx := c.Request.Context()
	state := models.SessionStateResponse{}

	if record, err := h.location.Cached(ctx, id); err == nil && record != nil {
		state.HasLocation = true
		state.City = record.City
	}

	if set, err := h.store.Has(ctx, id, store.KeyLeadSubmitted); err == nil {
		state.LeadSubmitted = set
	}
	if set, err := h.store.Has(ctx, id, store.KeyContactSubmitted); err == nil {
		state.ContactSubmitted = set
	}
	if set, err := h.store.Has(ctx, id, store.KeyCTADismissed); err == nil {
		state.CTADismissed = set
	}

	c.JSON(http.StatusOK, state)
}

// CloseSession handles the page-unload beacon
// @Summary Close a session
// @Description Best-effort unload beacon. When the visitor granted location but never submitted a form, the cached location is forwarded to the sink once in the background. The response only says whether the fallback was queued, delivery is not guaranteed.
// @Tags Session
// @Accept json
// @Produce json
// @Param X-Visitor-ID header string true "Visitor identity"
// @Success 202 {object} models.SessionCloseResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /session/close [post]
func (h *HandlerService) CloseSession(c *gin.Context) {
	id, err := visitorID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	queued, err := h.abandon.CloseSession(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, models.SessionCloseResponse{FallbackQueued: queued})
}

// DismissCTA records that the visitor dismissed the lead popup
// @Summary Dismiss the lead popup
// @Description Records the CTA dismissal so the popup is not shown again this session.
// @Tags Session
// @Accept json
// @Produce json
// @Param X-Visitor-ID header string true "Visitor identity"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /session/cta-dismissed [post]
func (h *HandlerService) DismissCTA(c *gin.Context) {
	id, err := visitorID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	value, _ := json.Marshal(map[string]time.Time{"at": time.Now().UTC()})
	if err := h.store.Set(c.Request.Context(), id, store.KeyCTADismissed, string(value)); err != nil {
		HandleError(c, NewInternalServerError("Failed to record dismissal", err))
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "ok", Success: true})
}
