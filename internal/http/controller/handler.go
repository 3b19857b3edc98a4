package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"crud_api/internal/config"
	"crud_api/internal/http/dto"
	"crud_api/internal/model"
	"crud_api/internal/queue"
	"crud_api/internal/service"
	"crud_api/internal/sse"
)

type registrar interface {
	Register(rg gin.IRouter)
}

type Handler struct {
	cfg       *config.Config
	services  *service.Services
	hub       *sse.Hub
	log       *zap.Logger
	pub       queue.Publisher
	resources []registrar
}

func NewHandler(cfg *config.Config, services *service.Services, hub *sse.Hub, logger *zap.Logger, publisher queue.Publisher) *Handler {
	return &Handler{
		cfg:      cfg,
		services: services,
		hub:      hub,
		log:      logger,
		pub:      publisher,
		resources: []registrar{
			NewResourceHandler(services.Users, func() model.Patch[model.User] { return &model.UserPatch{} }),
			NewResourceHandler(services.Products, func() model.Patch[model.Product] { return &model.ProductPatch{} }),
			NewResourceHandler(services.Orders, func() model.Patch[model.Order] { return &model.OrderPatch{} }),
			NewResourceHandler(services.Comments, func() model.Patch[model.Comment] { return &model.CommentPatch{} }),
			NewResourceHandler(services.Tags, func() model.Patch[model.Tag] { return &model.TagPatch{} }),
			NewResourceHandler(services.Categories, func() model.Patch[model.Category] { return &model.CategoryPatch{} }),
			NewResourceHandler(services.Reviews, func() model.Patch[model.Review] { return &model.ReviewPatch{} }),
			NewResourceHandler(services.Notifications, func() model.Patch[model.Notification] { return &model.NotificationPatch{} }),
			NewResourceHandler(services.Settings, func() model.Patch[model.Settings] { return &model.SettingsPatch{} }),
			NewResourceHandler(services.Logs, func() model.Patch[model.Log] { return &model.LogPatch{} }),
		},
	}
}

// RegisterResources mounts the CRUD routes of every resource on rg.
func (h *Handler) RegisterResources(rg gin.IRouter) {
	for _, r := range h.resources {
		r.Register(rg)
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}
