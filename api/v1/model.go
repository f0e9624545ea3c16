package v1

import (
	"net/http"

	"github.com/blocktrace/dto"
	"github.com/blocktrace/services"
	"github.com/gin-gonic/gin"
)

var modelService = services.NewModelService()

// ListModels returns every model the caller owns or has been granted access to
func ListModels(c *gin.Context) {
	models, err := modelService.ListModels(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   models,
	})
}

// CreateModel creates a new model owned by the caller
func CreateModel(c *gin.Context) {
	var req dto.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	model, err := modelService.CreateModel(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   model,
	})
}

// GetModel returns one model if the caller can view it
func GetModel(c *gin.Context) {
	model, err := modelService.GetModel(c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   model,
	})
}

// UpdateModel updates the fields present in the request body
func UpdateModel(c *gin.Context) {
	var req dto.UpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	model, err := modelService.UpdateModel(c.Param("id"), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   model,
	})
}

// DeleteModel deletes a model and everything hanging off it. Owner only.
func DeleteModel(c *gin.Context) {
	if err := modelService.DeleteModel(c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Model deleted successfully",
	})
}
