package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(101, 2, 25)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 25, p.PerPage)
	assert.Equal(t, int64(101), p.Total)
	assert.Equal(t, 5, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestBuildPaginationEmpty(t *testing.T) {
	p := BuildPagination(0, 1, 25)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestBuildPaginationNormalizesInputs(t *testing.T) {
	p := BuildPagination(10, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 1, p.TotalPages)
}
