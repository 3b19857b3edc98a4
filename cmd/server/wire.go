//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"crud_api/internal/app"
	"crud_api/internal/config"
	"crud_api/internal/http"
	"crud_api/internal/http/controller"
	"crud_api/internal/logging"
	"crud_api/internal/queue/rabbitmq"
	"crud_api/internal/service"
	"crud_api/internal/sse"
	"crud_api/internal/store"
)

func InitializeApp() (*app.App, func(), error) {
	wire.Build(
		config.New,
		logging.New,
		store.NewStores,
		sse.NewHub,
		service.NewServices,
		controller.NewHandler,
		http.NewRouter,
		rabbitmq.NewConsumer,
		rabbitmq.NewPublisher,
		app.NewApp,
	)
	return nil, nil, nil
}
