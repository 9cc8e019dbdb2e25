package shared_test

import (
	"context"
	"errors"
	"fieldserve/shared"
	"fieldserve/shared/cache/mocks"
	"fieldserve/shared/dto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{"no rows still has one page", 0, 10, 1},
		{"exact fit", 20, 10, 2},
		{"remainder adds a page", 21, 10, 3},
		{"fewer than a page", 3, 10, 1},
		{"zero limit", 50, 0, 1},
		{"negative limit", 50, -5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("booking-1", "id", "bookings")

	require.Len(t, filter.Filters, 1)
	assert.Equal(t, dto.Filter{
		Field:    "id",
		Value:    "booking-1",
		Operator: dto.FilterOperatorEq,
		Table:    "bookings",
	}, filter.Filters[0])

	where, args := filter.GetWhereClause()
	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "booking-1"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{"prefix only", "booking:get", nil, "booking:get"},
		{"with parts", "booking:get", []string{"abc"}, "booking:get:abc"},
		{"skips empty parts", "refdata:location", []string{"", "560001"}, "refdata:location:560001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	pending := shared.FilterByID("pending", "status", "bookings")
	completed := shared.FilterByID("completed", "status", "bookings")

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, pending)
	again := shared.BuildCacheKeyWithQuery("booking:gets", params, pending)
	other := shared.BuildCacheKeyWithQuery("booking:gets", params, completed)

	assert.Equal(t, first, again)
	assert.NotEqual(t, first, other)
	assert.True(t, strings.HasPrefix(first, "booking:gets:p2:l10:created_at:DESC:"), first)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	gomock.InOrder(
		redisCache.EXPECT().Clear(gomock.Any(), "booking:gets").Return(errors.New("redis down")),
		redisCache.EXPECT().Clear(gomock.Any(), "booking:dashboard").Return(nil),
	)

	shared.InvalidateCaches(context.Background(), redisCache, "booking:gets", "booking:dashboard")
}
