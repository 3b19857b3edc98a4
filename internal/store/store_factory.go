package store

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"crud_api/internal/config"
	"crud_api/internal/model"
	"crud_api/internal/repository"
	"crud_api/internal/store/memory"
	"crud_api/internal/store/mysql"
)

// Stores holds one repository per resource.
type Stores struct {
	Users         repository.Repository[model.User]
	Products      repository.Repository[model.Product]
	Orders        repository.Repository[model.Order]
	Comments      repository.Repository[model.Comment]
	Tags          repository.Repository[model.Tag]
	Categories    repository.Repository[model.Category]
	Reviews       repository.Repository[model.Review]
	Notifications repository.Repository[model.Notification]
	Settings      repository.Repository[model.Settings]
	Logs          repository.Repository[model.Log]
}

// NewMemoryStores returns empty in-memory collections for every resource.
func NewMemoryStores(logger *zap.Logger) *Stores {
	return &Stores{
		Users:         memory.New[model.User](model.UserResource, logger),
		Products:      memory.New[model.Product](model.ProductResource, logger),
		Orders:        memory.New[model.Order](model.OrderResource, logger),
		Comments:      memory.New[model.Comment](model.CommentResource, logger),
		Tags:          memory.New[model.Tag](model.TagResource, logger),
		Categories:    memory.New[model.Category](model.CategoryResource, logger),
		Reviews:       memory.New[model.Review](model.ReviewResource, logger),
		Notifications: memory.New[model.Notification](model.NotificationResource, logger),
		Settings:      memory.New[model.Settings](model.SettingsResource, logger),
		Logs:          memory.New[model.Log](model.LogResource, logger),
	}
}

// NewStores picks the MySQL backend when a DSN is configured and the
// in-memory one otherwise. The cleanup closes the connection pool.
func NewStores(cfg *config.Config, logger *zap.Logger) (*Stores, func(), error) {
	if cfg.MySQLDSN == "" {
		logger.Info("using in-memory store")
		return NewMemoryStores(logger), func() {}, nil
	}

	sqlDB, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logger.Error("mysql open failed", zap.Error(err))
		return nil, nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Error("mysql ping failed", zap.Error(err))
		_ = sqlDB.Close()
		return nil, nil, err
	}

	db := mysql.New(sqlDB, logger)
	stores, err := newMySQLStores(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	logger.Info("using mysql store")
	cleanup := func() {
		if err := db.Close(); err != nil {
			logger.Error("mysql close failed", zap.Error(err))
		}
	}
	return stores, cleanup, nil
}

func newMySQLStores(ctx context.Context, db *mysql.Store) (*Stores, error) {
	var (
		s   Stores
		err error
	)
	if s.Users, err = mysql.NewCollection[model.User](ctx, db, model.UserResource); err != nil {
		return nil, err
	}
	if s.Products, err = mysql.NewCollection[model.Product](ctx, db, model.ProductResource); err != nil {
		return nil, err
	}
	if s.Orders, err = mysql.NewCollection[model.Order](ctx, db, model.OrderResource); err != nil {
		return nil, err
	}
	if s.Comments, err = mysql.NewCollection[model.Comment](ctx, db, model.CommentResource); err != nil {
		return nil, err
	}
	if s.Tags, err = mysql.NewCollection[model.Tag](ctx, db, model.TagResource); err != nil {
		return nil, err
	}
	if s.Categories, err = mysql.NewCollection[model.Category](ctx, db, model.CategoryResource); err != nil {
		return nil, err
	}
	if s.Reviews, err = mysql.NewCollection[model.Review](ctx, db, model.ReviewResource); err != nil {
		return nil, err
	}
	if s.Notifications, err = mysql.NewCollection[model.Notification](ctx, db, model.NotificationResource); err != nil {
		return nil, err
	}
	if s.Settings, err = mysql.NewCollection[model.Settings](ctx, db, model.SettingsResource); err != nil {
		return nil, err
	}
	if s.Logs, err = mysql.NewCollection[model.Log](ctx, db, model.LogResource); err != nil {
		return nil, err
	}
	return &s, nil
}
