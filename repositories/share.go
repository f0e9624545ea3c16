package repositories

import (
	"github.com/blocktrace/database"
	"github.com/blocktrace/models"
)

// ShareRepository handles database operations for model shares
type ShareRepository struct{}

// NewShareRepository creates a new share repository instance
func NewShareRepository() *ShareRepository {
	return &ShareRepository{}
}

// FindByID retrieves a share with its model loaded, for ownership checks
func (r *ShareRepository) FindByID(id string) (models.ModelShare, error) {
	var share models.ModelShare
	result := database.DB.Preload("Model").First(&share, "id = ?", id)
	return share, result.Error
}

// FindByModelAndUser retrieves the share for a (model, user) pair if one exists
func (r *ShareRepository) FindByModelAndUser(modelID, userID string) (models.ModelShare, error) {
	var share models.ModelShare
	result := database.DB.First(&share, "model_id = ? AND user_id = ?", modelID, userID)
	return share, result.Error
}

// FindByModelID retrieves all shares of a model with the grantee loaded,
// newest first
func (r *ShareRepository) FindByModelID(modelID string) ([]models.ModelShare, error) {
	var shares []models.ModelShare
	result := database.DB.
		Preload("User").
		Where("model_id = ?", modelID).
		Order("created_at desc").
		Find(&shares)
	return shares, result.Error
}

// FindByUserID retrieves all shares granted to a user with the model and its
// owner loaded, newest first
func (r *ShareRepository) FindByUserID(userID string) ([]models.ModelShare, error) {
	var shares []models.ModelShare
	result := database.DB.
		Preload("Model").
		Preload("Model.User").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&shares)
	return shares, result.Error
}

// Create inserts a new share into the database
func (r *ShareRepository) Create(share models.ModelShare) (models.ModelShare, error) {
	result := database.DB.Create(&share)
	return share, result.Error
}

// Save persists changes to an existing share
func (r *ShareRepository) Save(share models.ModelShare) (models.ModelShare, error) {
	result := database.DB.Save(&share)
	return share, result.Error
}

// Delete removes a share by ID
func (r *ShareRepository) Delete(id string) error {
	result := database.DB.Delete(&models.ModelShare{}, "id = ?", id)
	return result.Error
}
