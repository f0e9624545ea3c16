package v1

import (
	"net/http"

	"github.com/blocktrace/dto"
	"github.com/blocktrace/services"
	"github.com/gin-gonic/gin"
)

var (
	requirementService  = services.NewRequirementService()
	traceabilityService = services.NewTraceabilityService()
)

// ListRequirements returns every requirement the caller owns, across models
func ListRequirements(c *gin.Context) {
	requirements, err := requirementService.ListRequirements(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   requirements,
	})
}

// CreateRequirement creates a requirement owned by the caller
func CreateRequirement(c *gin.Context) {
	var req dto.CreateRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	requirement, err := requirementService.CreateRequirement(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   requirement,
	})
}

// UpdateRequirement patches a requirement the caller owns
func UpdateRequirement(c *gin.Context) {
	var req dto.UpdateRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	requirement, err := requirementService.UpdateRequirement(c.Param("id"), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   requirement,
	})
}

// DeleteRequirement deletes a requirement the caller owns, links included
func DeleteRequirement(c *gin.Context) {
	if err := requirementService.DeleteRequirement(c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Requirement deleted successfully",
	})
}

// ListModelRequirements returns the caller's own requirements within a model
func ListModelRequirements(c *gin.Context) {
	requirements, err := requirementService.ListModelRequirements(c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   requirements,
	})
}

// GetTraceability returns the requirement-to-block matrix for a model
func GetTraceability(c *gin.Context) {
	traceability, err := traceabilityService.GetTraceability(c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   traceability,
	})
}

// ReplaceRequirementLinks replaces all block links of a requirement in a model
func ReplaceRequirementLinks(c *gin.Context) {
	var req dto.ReplaceLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	err := linkService.ReplaceRequirementLinks(c.Param("id"), currentUserID(c), req.ModelID, req.BlockIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Links updated successfully",
	})
}

// UnlinkBlock removes the link between a requirement and one block
func UnlinkBlock(c *gin.Context) {
	err := linkService.UnlinkBlock(c.Param("id"), c.Param("blockId"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Link removed successfully",
	})
}
