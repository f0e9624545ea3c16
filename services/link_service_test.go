package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildReplacementLinks(t *testing.T) {
	links := buildReplacementLinks("req-1", "model-1", []string{"b1", "b2"})

	assert.Len(t, links, 2)
	for _, link := range links {
		assert.Equal(t, "req-1", link.RequirementID)
		assert.Equal(t, "model-1", link.ModelID)
	}
	assert.Equal(t, "b1", links[0].BlockID)
	assert.Equal(t, "b2", links[1].BlockID)
}

func TestBuildReplacementLinksDedupes(t *testing.T) {
	links := buildReplacementLinks("req-1", "model-1", []string{"b1", "b1", "b2", "b1"})

	assert.Len(t, links, 2)
}

func TestBuildReplacementLinksSkipsEmptyIDs(t *testing.T) {
	links := buildReplacementLinks("req-1", "model-1", []string{"", "b1", ""})

	assert.Len(t, links, 1)
	assert.Equal(t, "b1", links[0].BlockID)
}

func TestBuildReplacementLinksEmptyInput(t *testing.T) {
	assert.Empty(t, buildReplacementLinks("req-1", "model-1", nil))
	assert.Empty(t, buildReplacementLinks("req-1", "model-1", []string{}))
}
