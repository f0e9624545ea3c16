package v1

import (
	"net/http"

	"github.com/blocktrace/dto"
	"github.com/blocktrace/services"
	"github.com/gin-gonic/gin"
)

var blockService = services.NewBlockService()

// CreateBlock creates a block in a model, optionally under a parent
func CreateBlock(c *gin.Context) {
	var req dto.CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	block, err := blockService.CreateBlock(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   block,
	})
}

// UpdateBlock patches a block; reparenting is cycle-checked
func UpdateBlock(c *gin.Context) {
	var req dto.UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	block, err := blockService.UpdateBlock(c.Param("id"), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   block,
	})
}

// DeleteBlock deletes a block; its children become roots
func DeleteBlock(c *gin.Context) {
	if err := blockService.DeleteBlock(c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Block deleted successfully",
	})
}

// ListModelBlocks returns every block of a model with parent and children
func ListModelBlocks(c *gin.Context) {
	blocks, err := blockService.ListModelBlocks(c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   blocks,
	})
}
