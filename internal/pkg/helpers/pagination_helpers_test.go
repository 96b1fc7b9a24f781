package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page falls back to first", 0, 10, 0, 10},
		{"zero size falls back to default", 2, 0, 10, 10},
		{"oversized limit falls back to default", 1, 500, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("total pages rounds up", func(t *testing.T) {
		info := NewPaginationInfo(25, 1, 10)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, int64(25), info.TotalItems)
		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, 10, info.PageSize)
	})

	t.Run("exact multiple", func(t *testing.T) {
		info := NewPaginationInfo(30, 2, 10)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, 2, info.CurrentPage)
	})

	t.Run("empty result has zero pages", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		assert.Equal(t, 0, info.TotalPages)
		assert.Equal(t, int64(0), info.TotalItems)
	})

	t.Run("single item still rounds up to one page", func(t *testing.T) {
		info := NewPaginationInfo(1, 1, 10)
		assert.Equal(t, 1, info.TotalPages)
	})

	t.Run("invalid page and size corrected", func(t *testing.T) {
		info := NewPaginationInfo(5, 0, 0)
		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, DefaultPageSize, info.PageSize)
		assert.Equal(t, 1, info.TotalPages)
	})
}
