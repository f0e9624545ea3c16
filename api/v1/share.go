package v1

import (
	"net/http"

	"github.com/blocktrace/dto"
	"github.com/blocktrace/services"
	"github.com/gin-gonic/gin"
)

var shareService = services.NewShareService()

// ShareModel grants another user access to a model by email
func ShareModel(c *gin.Context) {
	var req dto.ShareModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	share, err := shareService.ShareModel(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   share,
	})
}

// ListShares returns every share of a model. Owner only.
func ListShares(c *gin.Context) {
	shares, err := shareService.ListShares(c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   shares,
	})
}

// ListSharedWithMe returns every model shared with the caller
func ListSharedWithMe(c *gin.Context) {
	items, err := shareService.ListSharedWithMe(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   items,
	})
}

// RemoveShare revokes a share. The caller must own the share's model.
func RemoveShare(c *gin.Context) {
	if err := shareService.RemoveShare(c.Param("id"), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Share removed successfully",
	})
}
