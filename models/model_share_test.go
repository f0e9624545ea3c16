package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionSatisfies(t *testing.T) {
	assert.True(t, PermissionView.Satisfies(PermissionView))
	assert.False(t, PermissionView.Satisfies(PermissionEdit))

	assert.True(t, PermissionEdit.Satisfies(PermissionView))
	assert.True(t, PermissionEdit.Satisfies(PermissionEdit))

	// Unknown values grant nothing
	assert.False(t, Permission("admin").Satisfies(PermissionView))
	assert.False(t, Permission("").Satisfies(PermissionEdit))
}
