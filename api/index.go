package handler

import (
	"fieldserve/config"
	"fieldserve/di"
	"fieldserve/shared/logger"
	"fieldserve/shared/timezone"
	"fieldserve/transport/http/response"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	app     http.HandlerFunc
	initErr error
)

// Handler is the serverless entrypoint. The service graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()

		cfg := config.Get()

		logger.Configure(cfg)

		if err := timezone.Configure(cfg.App.Timezone); err != nil {
			log.Warn().Err(err).Msg("Falling back to UTC")
		}

		server, err := di.InitializeService()
		if err != nil {
			initErr = err

			return
		}

		app = server.Adaptor()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("Failed to initialize service")
		response.WithUnhealthy(w)

		return
	}

	app.ServeHTTP(w, r)
}
