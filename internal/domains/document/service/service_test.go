package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fieldserve/config"
	"fieldserve/infras/s3"
	s3Mocks "fieldserve/infras/s3/mocks"
	billingModel "fieldserve/internal/domains/billing/model"
	"fieldserve/internal/domains/document/service"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)


func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.External.S3.DocumentDirectory = "billing"

	return cfg
}

func expectUpload(storage *s3Mocks.MockStorage, err error) chan s3.Object {
	uploads := make(chan s3.Object, 1)

	storage.EXPECT().
		Put(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, object s3.Object) (string, error) {
			uploads <- object

			return "https://cdn.example.com/" + object.Key, err
		})

	return uploads
}

func receive(t *testing.T, uploads chan s3.Object) s3.Object {
	t.Helper()

	select {
	case u := <-uploads:
		return u
	case <-time.After(time.Second):
		t.Fatal("document was not uploaded")
	}

	return s3.Object{}
}

func TestArchiveInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := s3Mocks.NewMockStorage(ctrl)
	svc := service.New(newConfig(), storage)
	uploads := expectUpload(storage, nil)

	svc.ArchiveInvoice(context.Background(), billingModel.Invoice{
		ID:     "inv-1",
		Number: "INV-202601-000001",
		Total:  decimal.RequireFromString("1090.00"),
	})

	u := receive(t, uploads)
	assert.Equal(t, "billing/invoices/INV-202601-000001.json", u.Key)
	assert.Equal(t, "application/json", u.ContentType)
	assert.Equal(t, "invoices", u.Metadata["document-kind"])

	var decoded billingModel.Invoice
	require.NoError(t, json.Unmarshal(u.Body, &decoded))
	assert.Equal(t, "inv-1", decoded.ID)
	assert.True(t, decoded.Total.Equal(decimal.RequireFromString("1090")))
}

func TestArchiveCreditNote_UploadErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := s3Mocks.NewMockStorage(ctrl)
	svc := service.New(newConfig(), storage)
	uploads := expectUpload(storage, errors.New("bucket unavailable"))

	svc.ArchiveCreditNote(context.Background(), billingModel.CreditNote{Number: "CN-202601-000001"})

	u := receive(t, uploads)
	assert.Equal(t, "billing/credit-notes/CN-202601-000001.json", u.Key)
	assert.Equal(t, "CN-202601-000001", u.Metadata["document-number"])
}
