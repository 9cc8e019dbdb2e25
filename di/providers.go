package di

import (
	"fieldserve/config"
	"fieldserve/infras/kafka"
	"fieldserve/infras/otel"
	"fieldserve/infras/s3"
	documentService "fieldserve/internal/domains/document/service"
	notificationService "fieldserve/internal/domains/notification/service"
)

// provideDispatcher publishes to kafka when brokers are configured.
func provideDispatcher(cfg *config.Config, otel otel.Otel) notificationService.Dispatcher {
	if len(cfg.Kafka.Brokers) == 0 {
		return notificationService.NewNoop()
	}

	return notificationService.New(cfg, kafka.New(cfg, otel))
}

// provideArchiver stores issued documents when a bucket is configured.
func provideArchiver(cfg *config.Config, otel otel.Otel) documentService.Archiver {
	if cfg.External.S3.BucketName == "" {
		return documentService.NewNoop()
	}

	return documentService.New(cfg, s3.New(cfg, otel))
}
