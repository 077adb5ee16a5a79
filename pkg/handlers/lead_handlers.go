package handlers

import (
	"net/http"

	"zapbytes/pkg/leads"
	"zapbytes/pkg/models"

	"github.com/gin-gonic/gin"
)

// SubmitLead handles the lead popup submission
// @Summary Submit a lead
// @Description Validates the lead form, merges the visitor's cached location, and forwards the record to the spreadsheet sink. The record is forwarded whether or not the pincode is serviceable, serviceability only selects the confirmation message.
// @Tags Leads
// @Accept json
// @Produce json
// @Param X-Visitor-ID header string true "Visitor identity"
// @Param request body models.LeadSubmitRequest true "Lead form fields"
// @Success 200 {object} models.SubmissionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /leads [post]
func (h *HandlerService) SubmitLead(c *gin.Context) {
	id, err := visitorID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	var req models.LeadSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, NewBadRequestError("Invalid request body", err))
		return
	}

	result, err := h.leads.SubmitLead(c.Request.Context(), id, &leads.LeadRequest{
		Name:    req.Name,
		Phone:   req.Phone,
		Pincode: req.Pincode,
		Email:   req.Email,
		Consent: req.Consent,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SubmissionResponse{
		Success:  true,
		Feasible: result.Feasible,
		Message:  result.Message,
	})
}

// SubmitContact handles the contact form submission
// @Summary Submit a contact message
// @Description Validates the contact form and forwards it to the spreadsheet sink under the contact source label. No pincode or serviceability check applies.
// @Tags Leads
// @Accept json
// @Produce json
// @Param X-Visitor-ID header string true "Visitor identity"
// @Param request body models.ContactSubmitRequest true "Contact form fields"
// @Success 200 {object} models.SubmissionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /contact [post]
func (h *HandlerService) SubmitContact(c *gin.Context) {
	id, err := visitorID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	var req models.ContactSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, NewBadRequestError("Invalid request body", err))
		return
	}

	result, err := h.leads.SubmitContact(c.Request.Context(), id, &leads.ContactRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SubmissionResponse{
		Success: true,
		Message: result.Message,
	})
}
