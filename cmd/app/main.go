package main

import (
	"fieldserve/config"
	"fieldserve/di"
	"fieldserve/helper"
	"fieldserve/shared/logger"
	"fieldserve/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title Fieldserve API
// @version 1.0
// @description Booking lifecycle and billing engine for home services.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.Configure(cfg)

	if err := timezone.Configure(cfg.App.Timezone); err != nil {
		log.Warn().Err(err).Msg("Falling back to UTC")
	}

	if err := helper.AutoMigrate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
