package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prixmathaiti/prixmat-api/internal/domain/catalog"
)

func TestPaginate_PageDuMilieu(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	page, meta := catalog.Paginate(items, 2, 10)

	require.Len(t, page, 10)
	assert.Equal(t, 11, page[0])
	assert.Equal(t, 20, page[9])
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
}

func TestPaginate_PageHorsLimites_RenvoieVide(t *testing.T) {
	items := []int{1, 2, 3}

	page, meta := catalog.Paginate(items, 9, 10)

	assert.Empty(t, page)
	assert.Equal(t, 1, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
}

func TestPaginate_ValeursParDefaut(t *testing.T) {
	items := make([]int, 60)

	page, meta := catalog.Paginate(items, 0, 0)

	assert.Len(t, page, catalog.DefaultLimit)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, catalog.DefaultLimit, meta.Limit)
	assert.Equal(t, 2, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)
}

func TestPaginate_DernierePageIncomplete(t *testing.T) {
	items := make([]int, 25)

	page, meta := catalog.Paginate(items, 3, 10)

	assert.Len(t, page, 5)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
}
