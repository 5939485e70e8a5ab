package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginateFirstPage(t *testing.T) {
	page, meta := Paginate(makeItems(25), 10, 1)

	assert.Len(t, page, 10)
	assert.Equal(t, 1, page[0])
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 25, meta.TotalItems)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.False(t, meta.HasPrevious)
}

func TestPaginateLastPartialPage(t *testing.T) {
	page, meta := Paginate(makeItems(25), 10, 3)

	assert.Len(t, page, 5)
	assert.Equal(t, 21, page[0])
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrevious)
}

func TestPaginateClampsBeyondLastPage(t *testing.T) {
	page, meta := Paginate(makeItems(25), 10, 99)

	assert.Equal(t, 3, meta.Page)
	assert.Len(t, page, 5)
	assert.Equal(t, 21, page[0])
}

func TestPaginateClampsBelowFirstPage(t *testing.T) {
	page, meta := Paginate(makeItems(25), 10, 0)

	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 1, page[0])
}

func TestPaginateEmptyInput(t *testing.T) {
	page, meta := Paginate([]int{}, 6, 4)

	assert.Empty(t, page)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 1, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrevious)
}

func TestPaginateBlogPageSize(t *testing.T) {
	page, meta := Paginate(makeItems(7), 6, 2)

	assert.Len(t, page, 1)
	assert.Equal(t, 2, meta.TotalPages)
	assert.Equal(t, 7, page[0])
}
