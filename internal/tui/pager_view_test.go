package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagewindow/internal/pagination"
)

func itemsAt(t *testing.T, records, page, neighbors int) []pagination.Item {
	t.Helper()
	c, err := pagination.New(
		pagination.Options{TotalRecords: records, PageLimit: 10, PageNeighbors: neighbors},
		func(pagination.PageInfo) {},
		pagination.WithInitialPage(page),
	)
	require.NoError(t, err)
	return c.Items()
}

func TestRenderPlainPager(t *testing.T) {
	tests := []struct {
		name      string
		records   int
		page      int
		neighbors int
		want      string
	}{
		{name: "empty", records: 0, page: 1, neighbors: 1, want: ""},
		{name: "single page", records: 5, page: 1, neighbors: 1, want: "[1]"},
		{name: "both ellipses", records: 100, page: 6, neighbors: 2, want: "1 ... 4 5 [6] 7 8 ... 10"},
		{name: "right ellipsis", records: 100, page: 1, neighbors: 1, want: "[1] 2 3 4 5 ... 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderPlainPager(itemsAt(t, tt.records, tt.page, tt.neighbors)))
		})
	}
}

func TestRenderPager(t *testing.T) {
	assert.Empty(t, RenderPager(nil, NoFocus))

	out := RenderPager(itemsAt(t, 100, 6, 2), NoFocus)
	for _, want := range []string{"1", "...", "6", "10"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderLabels(t *testing.T) {
	out := RenderLabels(itemsAt(t, 100, 5, 1))

	assert.Contains(t, out, "Previous page")
	assert.Contains(t, out, "Next page")
	assert.Contains(t, out, "* 5      Go to page 5")
	assert.Contains(t, out, "  10     Go to page 10")
}
