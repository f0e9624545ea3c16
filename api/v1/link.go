package v1

import (
	"net/http"

	"github.com/blocktrace/dto"
	"github.com/blocktrace/services"
	"github.com/gin-gonic/gin"
)

var linkService = services.NewLinkService()

// CreateLink links a block to a requirement within a model
func CreateLink(c *gin.Context) {
	var req dto.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	link, err := linkService.CreateLink(currentUserID(c), req.ModelID, req.BlockID, req.RequirementID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   link,
	})
}

// DeleteLink removes one link by id
func DeleteLink(c *gin.Context) {
	if err := linkService.DeleteLink(c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Link deleted successfully",
	})
}

// ListModelLinks returns every link of a model the caller owns. An optional
// blockId query narrows it to one block.
func ListModelLinks(c *gin.Context) {
	modelID := c.Param("id")
	userID := currentUserID(c)

	if blockID := c.Query("blockId"); blockID != "" {
		links, err := linkService.ListBlockLinks(modelID, blockID, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   links,
		})
		return
	}

	links, err := linkService.ListModelLinks(modelID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   links,
	})
}
