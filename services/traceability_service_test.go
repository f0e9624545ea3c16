package services

import (
	"testing"

	"github.com/blocktrace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMatrix(t *testing.T) {
	requirements := []models.Requirement{
		{ID: "r1", Title: "Max payload"},
		{ID: "r2", Title: "Battery life"},
	}
	blocks := []models.Block{
		{ID: "b1", Name: "Airframe"},
		{ID: "b2", Name: "Power unit"},
	}
	links := []models.Link{
		{ID: "l1", RequirementID: "r1", BlockID: "b1"},
		{ID: "l2", RequirementID: "r1", BlockID: "b2"},
		{ID: "l3", RequirementID: "r2", BlockID: "b2"},
	}

	matrix := BuildMatrix(requirements, blocks, links)

	require.Len(t, matrix.Requirements, 2)
	assert.Equal(t, []string{"b1", "b2"}, matrix.Requirements[0].LinkedBlocks)
	assert.Equal(t, []string{"b2"}, matrix.Requirements[1].LinkedBlocks)

	require.Len(t, matrix.Blocks, 2)
	assert.Equal(t, []string{"r1"}, matrix.Blocks[0].LinkedRequirements)
	assert.Equal(t, []string{"r1", "r2"}, matrix.Blocks[1].LinkedRequirements)
}

func TestBuildMatrixUnlinkedEntries(t *testing.T) {
	requirements := []models.Requirement{{ID: "r1"}}
	blocks := []models.Block{{ID: "b1"}}

	matrix := BuildMatrix(requirements, blocks, nil)

	require.Len(t, matrix.Requirements, 1)
	require.Len(t, matrix.Blocks, 1)
	// Unlinked entries carry empty slices, not nil, so they serialize as []
	assert.NotNil(t, matrix.Requirements[0].LinkedBlocks)
	assert.Empty(t, matrix.Requirements[0].LinkedBlocks)
	assert.NotNil(t, matrix.Blocks[0].LinkedRequirements)
	assert.Empty(t, matrix.Blocks[0].LinkedRequirements)
}

func TestBuildMatrixIgnoresForeignLinks(t *testing.T) {
	// Links referencing rows outside the loaded sets are simply not annotated.
	// This is what a collaborator sees: the owner's links exist but the owner's
	// requirements are not in their view.
	blocks := []models.Block{{ID: "b1"}}
	links := []models.Link{
		{ID: "l1", RequirementID: "someone-elses", BlockID: "b1"},
	}

	matrix := BuildMatrix(nil, blocks, links)

	assert.Empty(t, matrix.Requirements)
	require.Len(t, matrix.Blocks, 1)
	assert.Equal(t, []string{"someone-elses"}, matrix.Blocks[0].LinkedRequirements)
}
