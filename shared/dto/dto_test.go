package dto_test

import (
	"fieldserve/shared/constant"
	"fieldserve/shared/dto"
	"fieldserve/shared/model"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("modified", func(t *testing.T) {
		metadata := dto.Metadata{}
		metadata.FromModel(model.Metadata{
			CreatedAt:  createdAt,
			ModifiedAt: createdAt.Add(time.Hour),
			CreatedBy:  "admin-1",
			ModifiedBy: "provider-1",
		})

		assert.NotEmpty(t, metadata.CreatedAt)
		assert.NotEmpty(t, metadata.ModifiedAt)
		assert.Equal(t, "admin-1", metadata.CreatedBy)
		assert.Equal(t, "provider-1", metadata.ModifiedBy)
	})

	t.Run("never modified", func(t *testing.T) {
		metadata := dto.Metadata{}
		metadata.FromModel(model.Metadata{CreatedAt: createdAt, CreatedBy: "admin-1"})

		assert.Empty(t, metadata.ModifiedAt)
		assert.Empty(t, metadata.ModifiedBy)
	})
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          url.Values
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    url.Values{"page": {"2"}, "limit": {"20"}, "sort_by": {"preferred_date"}, "sort_dir": {"asc"}},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "preferred_date", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults",
			query:          url.Values{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults",
			query:    url.Values{},
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back",
			query:          url.Values{"page": {"-1"}, "limit": {"abc"}},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "limit is capped",
			query:    url.Values{"limit": {"5000"}},
			expected: dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:     "qualified sort column",
			query:    url.Values{"sort_by": {"bookings.created_at"}, "sort_dir": {"DESC"}},
			expected: dto.QueryParams{SortBy: "bookings.created_at", SortDir: dto.SortDirDesc},
		},
		{
			name:     "injected sort column is ignored",
			query:    url.Values{"sort_by": {"id; DROP TABLE bookings"}, "sort_dir": {"sideways"}},
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/bookings?"+tt.query.Encode(), nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{Page: 0, Limit: 10}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.Filter
		where    string
		expected map[string]any
	}{
		{
			name:     "eq",
			filter:   dto.Where("bookings", "status", dto.FilterOperatorEq, "pending"),
			where:    "bookings.status = :status",
			expected: map[string]any{"status": "pending"},
		},
		{
			name:     "renamed bound",
			filter:   dto.Where("invoices", "issue_date", dto.FilterOperatorGreaterEq, "2025-01-01").As("issue_date_from"),
			where:    "invoices.issue_date >= :issue_date_from",
			expected: map[string]any{"issue_date_from": "2025-01-01"},
		},
		{
			name:     "less",
			filter:   dto.Where("bookings", "preferred_start_at", dto.FilterOperatorLess, "t"),
			where:    "bookings.preferred_start_at < :preferred_start_at",
			expected: map[string]any{"preferred_start_at": "t"},
		},
		{
			name:     "like",
			filter:   dto.Where("", "address", dto.FilterOperatorLike, "mg road"),
			where:    "LOWER(address) LIKE LOWER(:address)",
			expected: map[string]any{"address": "%mg road%"},
		},
		{
			name:     "in",
			filter:   dto.Where("bookings", "status", dto.FilterOperatorIn, []string{"assigned", "in_progress"}),
			where:    "bookings.status IN (:status_0, :status_1)",
			expected: map[string]any{"status_0": "assigned", "status_1": "in_progress"},
		},
		{
			name:     "empty in matches nothing",
			filter:   dto.Where("bookings", "status", dto.FilterOperatorIn, []string{}),
			where:    "FALSE",
			expected: map[string]any{},
		},
		{
			name:     "is null",
			filter:   dto.Where("provider_windows", "checked_out_at", dto.FilterIsNull, nil),
			where:    "provider_windows.checked_out_at IS NULL",
			expected: map[string]any{},
		},
		{
			name:     "unknown operator",
			filter:   dto.Where("bookings", "status", "between", "x"),
			where:    "",
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.expected, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("nested groups", func(t *testing.T) {
		group := dto.And(dto.Where("bookings", "customer_id", dto.FilterOperatorEq, "c-1"))
		group.Add(dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Where("bookings", "status", dto.FilterOperatorEq, "pending"),
				dto.Where("bookings", "assigned_provider_id", dto.FilterIsNull, nil),
			},
		})

		where, args := group.GetWhereClause()

		assert.Equal(t, "(bookings.customer_id = :customer_id AND (bookings.status = :status OR bookings.assigned_provider_id IS NULL))", where)
		assert.Equal(t, map[string]any{"customer_id": "c-1", "status": "pending"}, args)
	})

	t.Run("empty group", func(t *testing.T) {
		group := dto.And()

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("skips empty clauses", func(t *testing.T) {
		group := dto.FilterGroup{Filters: []any{
			dto.Where("bookings", "status", "between", "x"),
			dto.Where("bookings", "id", dto.FilterOperatorEq, "b-1"),
			"not a filter",
		}}

		where, _ := group.GetWhereClause()

		assert.Equal(t, "(bookings.id = :id)", where)
	})
}
