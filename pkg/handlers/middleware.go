package handlers

import (
	"time"

	"zapbytes/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// visitorID extracts the visitor identity from the request, returning
// ErrVisitorRequired when the header is absent.
func visitorID(c *gin.Context) (string, error) {
	id := middleware.GetVisitorID(c)
	if id == "" {
		return "", ErrVisitorRequired
	}
	return id, nil
}

// sanitizeConfig removes sensitive information from config before returning
func (h *HandlerService) sanitizeConfig() map[string]interface{} {
	cfg := h.config

	sanitized := map[string]interface{}{
		"server": map[string]interface{}{
			"port":    cfg.Server.Port,
			"address": cfg.Server.Address,
		},
		"store": map[string]interface{}{
			"driver": cfg.GetStoreConfig().Driver,
		},
		"sink": map[string]interface{}{
			"configured":  cfg.GetSinkConfig().WebhookURL != "",
			"webhook_url": maskWebhookURL(cfg.GetSinkConfig().WebhookURL),
			"timeout":     cfg.GetSinkConfig().Timeout,
		},
		"geocoder": map[string]interface{}{
			"base_url": cfg.GetGeocoderConfig().BaseURL,
			"timeout":  cfg.GetGeocoderConfig().Timeout,
		},
		"leads": map[string]interface{}{
			"service_area_size": len(cfg.GetLeadsConfig().ServiceArea),
		},
		"session": map[string]interface{}{
			"ttl_minutes": cfg.GetSessionConfig().TTLMinutes,
		},
		"app": cfg.App,
	}

	return sanitized
}

// maskWebhookURL hides the sensitive part of the sink webhook URL so it
// can be shown safely in API responses
func maskWebhookURL(webhookURL string) string {
	if webhookURL == "" {
		return ""
	}

	if len(webhookURL) > 20 {
		return webhookURL[:10] + "***" + webhookURL[len(webhookURL)-7:]
	}
	return "***"
}

// getCurrentTimestamp returns the current UTC timestamp
func getCurrentTimestamp() time.Time {
	return time.Now().UTC()
}
