package v1

import (
	"net/http"

	"github.com/blocktrace/dto"
	"github.com/blocktrace/services"
	"github.com/gin-gonic/gin"
)

var diagramService = services.NewDiagramService()

// CreateDiagram creates a named diagram on a model
func CreateDiagram(c *gin.Context) {
	var req dto.CreateDiagramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	diagram, err := diagramService.CreateDiagram(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   diagram,
	})
}

// ListModelDiagrams returns every diagram of a model
func ListModelDiagrams(c *gin.Context) {
	diagrams, err := diagramService.ListModelDiagrams(c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   diagrams,
	})
}

// GetDiagram returns a diagram with its block placements
func GetDiagram(c *gin.Context) {
	diagram, err := diagramService.GetDiagram(c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   diagram,
	})
}

// UpdateDiagram renames or retypes a diagram
func UpdateDiagram(c *gin.Context) {
	var req dto.UpdateDiagramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	diagram, err := diagramService.UpdateDiagram(c.Param("id"), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   diagram,
	})
}

// DeleteDiagram deletes a diagram and its placements
func DeleteDiagram(c *gin.Context) {
	if err := diagramService.DeleteDiagram(c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Diagram deleted successfully",
	})
}

// PlaceBlock puts a block on a diagram or moves it if already placed
func PlaceBlock(c *gin.Context) {
	var req dto.PlaceBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	placement, err := diagramService.PlaceBlock(c.Param("id"), c.Param("blockId"), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   placement,
	})
}

// RemoveBlock takes a block off a diagram
func RemoveBlock(c *gin.Context) {
	err := diagramService.RemoveBlock(c.Param("id"), c.Param("blockId"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Block removed from diagram successfully",
	})
}
