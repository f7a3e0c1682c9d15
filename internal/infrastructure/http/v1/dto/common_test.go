package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agent360/internal/core/apperror"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 35)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 35, p.TotalCount)
	assert.Equal(t, 4, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrevious)

	first := NewPagination(1, 10, 30)
	assert.Equal(t, 3, first.TotalPages)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrevious)

	last := NewPagination(3, 10, 30)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrevious)

	empty := NewPagination(1, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrevious)
}

func TestNewPagination_ClampsInvalidValues(t *testing.T) {
	p := NewPagination(1, 0, 5)
	assert.Equal(t, 1, p.PageSize)
	assert.Equal(t, 5, p.TotalPages)

	p = NewPagination(0, -3, 5)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 1, p.PageSize)
	assert.False(t, p.HasPrevious)
}

func TestNewErrorResponse(t *testing.T) {
	appErr := apperror.NewValidation("invalid parameters").
		WithField("level", "Unknown level.").
		WithField("parent_id", "This field is required.")

	resp := NewErrorResponse(appErr)
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid parameters", resp.Message)
	assert.Equal(t, apperror.CodeValidation, resp.ErrorCode)
	assert.Len(t, resp.Errors, 2)
	assert.Equal(t, "level", resp.Errors[0].Field)
	assert.Equal(t, "parent_id", resp.Errors[1].Field)
}
