package utils

import (
	"fmt"
	"strings"
)

// SanitizeFileName creates a safe download file name from a model name
func SanitizeFileName(name string) string {
	var result strings.Builder
	for _, char := range name {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') {
			result.WriteRune(char)
		} else {
			result.WriteRune('_')
		}
	}

	sanitized := strings.Trim(result.String(), "_")
	if sanitized == "" {
		sanitized = "model"
	}

	return sanitized
}

// ExportFileName builds the download name for an export, e.g. My_Model_export.json
func ExportFileName(modelName, extension string) string {
	return fmt.Sprintf("%s_export.%s", SanitizeFileName(modelName), extension)
}
