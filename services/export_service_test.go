package services

import (
	"strings"
	"testing"

	"github.com/blocktrace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestExtractGeometryBlocks(t *testing.T) {
	doc := datatypes.JSON(`{
		"cells": [
			{"id": "c1", "type": "standard.Rectangle", "attrs": {"label": {"text": "Engine"}}, "description": "Main drive", "position": {"x": 10, "y": 20}},
			{"id": "c2", "type": "standard.Link", "attrs": {"label": {"text": "not a block"}}},
			{"id": "c3", "type": "custom.Rectangle", "attrs": {"label": {"text": ""}}}
		]
	}`)

	blocks, err := ExtractGeometryBlocks(doc)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, "c1", blocks[0].ID)
	assert.Equal(t, "Engine", blocks[0].Name)
	assert.Equal(t, "Main drive", blocks[0].Description)
	assert.Equal(t, 10.0, blocks[0].X)
	assert.Equal(t, 20.0, blocks[0].Y)

	// Missing label falls back to a placeholder name
	assert.Equal(t, "Unnamed Block", blocks[1].Name)
}

func TestExtractGeometryBlocksEmpty(t *testing.T) {
	blocks, err := ExtractGeometryBlocks(nil)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestExtractGeometryBlocksInvalid(t *testing.T) {
	_, err := ExtractGeometryBlocks(datatypes.JSON(`not json`))
	assert.Error(t, err)
}

func TestXMLEscape(t *testing.T) {
	assert.Equal(t, "a &amp; b &lt;c&gt; &quot;d&quot; &apos;e&apos;", xmlEscape(`a & b <c> "d" 'e'`))
	assert.Equal(t, "plain", xmlEscape("plain"))
}

func TestGenerateXMI(t *testing.T) {
	model := models.Model{ID: "m1", Name: "Drone <v2>"}
	blocks := []GeometryBlock{
		{ID: "b1", Name: "Airframe", Description: "Carbon body"},
	}
	requirements := []models.Requirement{
		{ID: "r1", Title: "Range & endurance", Description: "100km", Priority: models.PriorityHigh, Status: models.StatusOpen},
	}
	links := []models.Link{
		{ID: "l1", BlockID: "b1", RequirementID: "r1"},
	}

	xmi := generateXMI(model, blocks, requirements, links, "alice@example.com")

	assert.True(t, strings.HasPrefix(xmi, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, xmi, `name="Drone &lt;v2&gt;"`)
	assert.Contains(t, xmi, `xmi:id="b1" name="Airframe"`)
	assert.Contains(t, xmi, `xmi:id="r1" name="Range &amp; endurance"`)
	assert.Contains(t, xmi, `xmi:type="uml:Dependency"`)
	assert.Contains(t, xmi, `<client xmi:idref="b1"/>`)
	assert.Contains(t, xmi, `<supplier xmi:idref="r1"/>`)
	assert.Contains(t, xmi, `<author>alice@example.com</author>`)
}
