package dto

import (
	"fieldserve/shared/constant"
	"fieldserve/shared/model"
	"fieldserve/shared/timezone"
)

// Metadata is the audit block embedded in responses. Times are RFC 3339 in the business timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at,omitempty"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(metadata model.Metadata) {
	m.CreatedAt = timezone.Format(metadata.CreatedAt, constant.DateFormat)
	m.CreatedBy = metadata.CreatedBy

	if metadata.ModifiedAt.IsZero() {
		return
	}

	m.ModifiedAt = timezone.Format(metadata.ModifiedAt, constant.DateFormat)
	m.ModifiedBy = metadata.ModifiedBy
}
