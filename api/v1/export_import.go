package v1

import (
	"fmt"
	"net/http"

	"github.com/blocktrace/dto"
	"github.com/blocktrace/services"
	"github.com/gin-gonic/gin"
)

var (
	exportService = services.NewExportService()
	importService = services.NewImportService()
)

// ExportModelJSON streams the JSON export document as a download
func ExportModelJSON(c *gin.Context) {
	email, _ := c.Get("email")
	userEmail, _ := email.(string)

	doc, fileName, err := exportService.ExportJSON(c.Param("id"), currentUserID(c), userEmail)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.JSON(http.StatusOK, doc)
}

// ExportModelXMI streams the XMI document as a download
func ExportModelXMI(c *gin.Context) {
	document, fileName, err := exportService.ExportXMI(c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/xml", []byte(document))
}

// ImportModelJSON recreates a model from an export document under a new name
func ImportModelJSON(c *gin.Context) {
	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	model, err := importService.ImportJSON(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Model imported successfully",
		"data":    model,
	})
}
