package service

import (
	"go.uber.org/zap"
	"crud_api/internal/model"
	"crud_api/internal/service/crud"
	"crud_api/internal/sse"
	"crud_api/internal/store"
)

// Services bundles the per-resource services handed to the HTTP layer and
// the queue consumer.
type Services struct {
	Users         *crud.Service[model.User]
	Products      *crud.Service[model.Product]
	Orders        *crud.Service[model.Order]
	Comments      *crud.Service[model.Comment]
	Tags          *crud.Service[model.Tag]
	Categories    *crud.Service[model.Category]
	Reviews       *crud.Service[model.Review]
	Notifications *crud.Service[model.Notification]
	Settings      *crud.Service[model.Settings]
	Logs          *crud.Service[model.Log]
}

// NewServices wires every store to its service. Created logs are fanned out
// to the stream hub.
func NewServices(stores *store.Stores, hub *sse.Hub, logger *zap.Logger) *Services {
	return &Services{
		Users:         crud.NewService(model.UserResource, stores.Users, logger),
		Products:      crud.NewService(model.ProductResource, stores.Products, logger),
		Orders:        crud.NewService(model.OrderResource, stores.Orders, logger),
		Comments:      crud.NewService(model.CommentResource, stores.Comments, logger),
		Tags:          crud.NewService(model.TagResource, stores.Tags, logger),
		Categories:    crud.NewService(model.CategoryResource, stores.Categories, logger),
		Reviews:       crud.NewService(model.ReviewResource, stores.Reviews, logger),
		Notifications: crud.NewService(model.NotificationResource, stores.Notifications, logger),
		Settings:      crud.NewService(model.SettingsResource, stores.Settings, logger),
		Logs:          crud.NewService(model.LogResource, stores.Logs, logger, crud.WithCreateHook(hub.Broadcast)),
	}
}
