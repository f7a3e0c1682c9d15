package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	page1, meta := paginate(items, 1, 2)
	assert.Equal(t, []string{"a", "b"}, page1)
	assert.Equal(t, 5, meta.TotalCount)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.False(t, meta.HasPrevious)

	page3, meta := paginate(items, 3, 2)
	assert.Equal(t, []string{"e"}, page3)
	assert.False(t, meta.HasNext)

	beyond, meta := paginate(items, 10, 2)
	assert.Empty(t, beyond)
	assert.Equal(t, 10, meta.CurrentPage)
}

func TestPaginate_Defaults(t *testing.T) {
	items := make([]int, 30)

	page, meta := paginate(items, 0, 0)
	assert.Len(t, page, 20)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, 20, meta.PageSize)

	capped, meta := paginate(items, 1, 500)
	assert.Len(t, capped, 30)
	assert.Equal(t, 100, meta.PageSize)
}
