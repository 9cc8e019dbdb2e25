package s3_test

import (
	"fieldserve/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		key    string
		want   string
	}{
		{"no domain", "", "billing/invoices/INV-1.json", "billing/invoices/INV-1.json"},
		{"domain", "https://cdn.example.com", "billing/invoices/INV-1.json", "https://cdn.example.com/billing/invoices/INV-1.json"},
		{"leading slash", "https://cdn.example.com", "/a.json", "https://cdn.example.com/a.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s3.Location(tt.domain, tt.key))
		})
	}
}
