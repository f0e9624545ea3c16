package services

import (
	"testing"

	"github.com/blocktrace/models"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateAccessOwner(t *testing.T) {
	// Owner needs no share, for either level
	assert.True(t, EvaluateAccess("owner", nil, "owner", models.PermissionView))
	assert.True(t, EvaluateAccess("owner", nil, "owner", models.PermissionEdit))
}

func TestEvaluateAccessStranger(t *testing.T) {
	shares := []models.ModelShare{
		{UserID: "friend", Permission: models.PermissionEdit},
	}

	assert.False(t, EvaluateAccess("owner", shares, "stranger", models.PermissionView))
	assert.False(t, EvaluateAccess("owner", shares, "stranger", models.PermissionEdit))
}

func TestEvaluateAccessViewShare(t *testing.T) {
	shares := []models.ModelShare{
		{UserID: "viewer", Permission: models.PermissionView},
	}

	assert.True(t, EvaluateAccess("owner", shares, "viewer", models.PermissionView))
	assert.False(t, EvaluateAccess("owner", shares, "viewer", models.PermissionEdit))
}

func TestEvaluateAccessEditShare(t *testing.T) {
	shares := []models.ModelShare{
		{UserID: "editor", Permission: models.PermissionEdit},
	}

	// Edit covers view
	assert.True(t, EvaluateAccess("owner", shares, "editor", models.PermissionView))
	assert.True(t, EvaluateAccess("owner", shares, "editor", models.PermissionEdit))
}

func TestEvaluateAccessPicksCallersShare(t *testing.T) {
	shares := []models.ModelShare{
		{UserID: "viewer", Permission: models.PermissionView},
		{UserID: "editor", Permission: models.PermissionEdit},
	}

	assert.True(t, EvaluateAccess("owner", shares, "editor", models.PermissionEdit))
	assert.False(t, EvaluateAccess("owner", shares, "viewer", models.PermissionEdit))
}
