package handler

import (
	"net/http"
	"sync"

	"todoapi/config"
	"todoapi/di"
	"todoapi/shared/logger"
	transportHTTP "todoapi/transport/http"
)

var (
	server *transportHTTP.HTTP
	once   sync.Once
)

// Handler is the serverless entry point. The service is built once per
// instance so the in-memory collection survives between invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
