package handler

import (
	"net/http"

	"catalog/config"
	"catalog/di"
	"catalog/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	server := di.InitializeService()
	server.Handler().ServeHTTP(w, r)
}
