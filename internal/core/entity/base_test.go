package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"capplan/internal/core/id"
)

func TestNewBaseEntity(t *testing.T) {
	b := NewBaseEntity()
	assert.False(t, id.IsNil(b.ID))
	assert.Equal(t, 1, b.Version)
	assert.False(t, b.DeletionMark)
}

func TestTouch(t *testing.T) {
	c := NewBaseCatalog()
	var v Versioned = &c
	v.Touch()
	assert.Equal(t, 2, c.Version)

	d := NewBaseDocument()
	before := d.UpdatedAt
	time.Sleep(time.Millisecond)
	v = &d
	v.Touch()
	assert.Equal(t, 2, d.Version)
	assert.True(t, d.UpdatedAt.After(before))
	assert.Equal(t, d.CreatedAt, before)
}
