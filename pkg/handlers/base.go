package handlers

import (
	"context"

	"zapbytes/pkg/abandon"
	"zapbytes/pkg/config"
	"zapbytes/pkg/content"
	"zapbytes/pkg/leads"
	"zapbytes/pkg/location"
	"zapbytes/pkg/logger"
	"zapbytes/pkg/scheduler"
	"zapbytes/pkg/store"
)

// HandlerService provides HTTP handlers for the API
// Base handler service structure containing common dependencies for all handlers
type HandlerService struct {
	config    *config.Config
	ctx       context.Context
	store     store.Store
	location  *location.Service
	leads     *leads.Service
	abandon   *abandon.Service
	catalog   *content.Catalog
	scheduler *scheduler.TaskScheduler
}

// Services bundles the domain services the handlers depend on
type Services struct {
	Store    store.Store
	Location *location.Service
	Leads    *leads.Service
	Abandon  *abandon.Service
	Catalog  *content.Catalog
}

// NewHandlerService creates a new handler service
func NewHandlerService(ctx context.Context, cfg *config.Config, svcs *Services) *HandlerService {
	logger.Info("Initializing handler service")

	return &HandlerService{
		config:   cfg,
		ctx:      ctx,
		store:    svcs.Store,
		location: svcs.Location,
		leads:    svcs.Leads,
		abandon:  svcs.Abandon,
		catalog:  svcs.Catalog,
	}
}

// SetScheduler sets the scheduler reference (called after scheduler is created)
func (h *HandlerService) SetScheduler(schedulerInterface interface{}) {
	if s, ok := schedulerInterface.(*scheduler.TaskScheduler); ok {
		h.scheduler = s
	}
}

// GetConfig returns the handler service configuration
func (h *HandlerService) GetConfig() *config.Config {
	return h.config
}

// GetScheduler returns the scheduler instance
func (h *HandlerService) GetScheduler() *scheduler.TaskScheduler {
	return h.scheduler
}

// IsSchedulerAvailable checks if scheduler is available
func (h *HandlerService) IsSchedulerAvailable() bool {
	return h.scheduler != nil
}
