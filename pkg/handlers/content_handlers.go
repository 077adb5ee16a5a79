package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCatalog returns the full marketing catalog
// @Summary Get the content catalog
// @Description Returns plans, bundles, features, testimonials and FAQs in one response for the landing page.
// @Tags Content
// @Accept json
// @Produce json
// @Success 200 {object} content.Catalog
// @Router /content/catalog [get]
func (h *HandlerService) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}

// GetPlans returns broadband plans grouped by billing cycle
// @Summary Get broadband plans
// @Tags Content
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /content/plans [get]
func (h *HandlerService) GetPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"monthly": h.catalog.MonthlyPlans,
		"annual":  h.catalog.AnnualPlans,
	})
}

// GetBundles returns OTT and IPTV bundle packages
// @Summary Get bundle packages
// @Tags Content
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /content/bundles [get]
func (h *HandlerService) GetBundles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bundles": h.catalog.Bundles})
}

// GetFAQs returns the landing page FAQ entries
// @Summary Get FAQs
// @Tags Content
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /content/faqs [get]
func (h *HandlerService) GetFAQs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"faqs": h.catalog.FAQs})
}
