package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "My_Drone_Model", SanitizeFileName("My Drone Model"))
	assert.Equal(t, "v2__final", SanitizeFileName("v2 (final)"))
	assert.Equal(t, "model", SanitizeFileName("///"))
	assert.Equal(t, "model", SanitizeFileName(""))
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "My_Drone_Model_export.json", ExportFileName("My Drone Model", "json"))
	assert.Equal(t, "Sat_1_export.xmi", ExportFileName("Sat-1", "xmi"))
}
