package services

import (
	"testing"

	"github.com/blocktrace/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanImportLinks(t *testing.T) {
	links := []dto.ExportLink{
		{BlockID: "b1", Requirement: dto.ExportRequirement{ID: "old-r1"}},
		{BlockID: "b2", Requirement: dto.ExportRequirement{ID: "old-r2"}},
	}
	mapping := map[string]string{
		"old-r1": "new-r1",
		"old-r2": "new-r2",
	}

	planned := PlanImportLinks(links, mapping, "model-1")

	require.Len(t, planned, 2)
	assert.Equal(t, "new-r1", planned[0].RequirementID)
	assert.Equal(t, "b1", planned[0].BlockID)
	assert.Equal(t, "model-1", planned[0].ModelID)
	assert.Equal(t, "new-r2", planned[1].RequirementID)
}

func TestPlanImportLinksDropsUnmappable(t *testing.T) {
	// A link whose requirement is not in the document's requirement list
	// cannot be remapped and is silently dropped
	links := []dto.ExportLink{
		{BlockID: "b1", Requirement: dto.ExportRequirement{ID: "old-r1"}},
		{BlockID: "b2", Requirement: dto.ExportRequirement{ID: "stale"}},
	}
	mapping := map[string]string{"old-r1": "new-r1"}

	planned := PlanImportLinks(links, mapping, "model-1")

	require.Len(t, planned, 1)
	assert.Equal(t, "b1", planned[0].BlockID)
}

func TestPlanImportLinksEmpty(t *testing.T) {
	assert.Empty(t, PlanImportLinks(nil, map[string]string{}, "model-1"))
}
