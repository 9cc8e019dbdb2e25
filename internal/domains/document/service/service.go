package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fieldserve/config"
	"fieldserve/infras/s3"
	billingModel "fieldserve/internal/domains/billing/model"
	"fieldserve/shared/constant"
	"path"

	"github.com/rs/zerolog/log"
)

const (
	dirInvoices    = "invoices"
	dirCreditNotes = "credit-notes"
)

// Archiver hands issued documents to the external renderer by storing their data in S3.
// Uploads run after commit and failures are only logged.
type Archiver interface {
	ArchiveInvoice(ctx context.Context, invoice billingModel.Invoice)
	ArchiveCreditNote(ctx context.Context, creditNote billingModel.CreditNote)
}

type serviceImpl struct {
	storage   s3.Storage
	directory string
}

func New(cfg *config.Config, storage s3.Storage) Archiver {
	return &serviceImpl{
		storage:   storage,
		directory: cfg.External.S3.DocumentDirectory,
	}
}

func (s *serviceImpl) ArchiveInvoice(ctx context.Context, invoice billingModel.Invoice) {
	s.archive(ctx, dirInvoices, invoice.Number, invoice)
}

func (s *serviceImpl) ArchiveCreditNote(ctx context.Context, creditNote billingModel.CreditNote) {
	s.archive(ctx, dirCreditNotes, creditNote.Number, creditNote)
}

func (s *serviceImpl) archive(ctx context.Context, kind, number string, document any) {
	payload, err := json.Marshal(document)
	if err != nil {
		log.Error().Err(err).Str("number", number).Msg("failed to encode billing document")

		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		url, err := s.storage.Put(c, s3.Object{
			Key:         path.Join(s.directory, kind, number+".json"),
			ContentType: constant.ContentTypeJSON,
			Body:        payload,
			Metadata:    map[string]string{"document-kind": kind, "document-number": number},
		})
		if err != nil {
			log.Error().Err(err).Str("number", number).Msg("failed to archive billing document")

			return
		}

		log.Info().Str("number", number).Str("url", url).Msg("billing document archived")
	}()
}

type noopArchiver struct{}

// NewNoop skips archiving. Used when no bucket is configured.
func NewNoop() Archiver {
	return noopArchiver{}
}

func (noopArchiver) ArchiveInvoice(context.Context, billingModel.Invoice) {}

func (noopArchiver) ArchiveCreditNote(context.Context, billingModel.CreditNote) {}
