package main

import (
	"todoapi/config"
	"todoapi/di"
	"todoapi/shared/logger"
)

// @title TODO API
// @version 1.0.0
// @description CRUD service for TODO items kept in memory.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
