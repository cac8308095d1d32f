package main

import (
	"context"

	"catalog/config"
	"catalog/di"
	"catalog/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	listener := di.InitializeBookingListener()
	go listener.Listen(context.Background())

	http := di.InitializeService()
	http.Serve()
}
