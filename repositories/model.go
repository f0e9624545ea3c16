package repositories

import (
	"github.com/blocktrace/database"
	"github.com/blocktrace/models"
	"gorm.io/gorm/clause"
)

// ModelRepository handles database operations for models
type ModelRepository struct{}

// NewModelRepository creates a new model repository instance
func NewModelRepository() *ModelRepository {
	return &ModelRepository{}
}

// FindByID retrieves a model by its ID
func (r *ModelRepository) FindByID(id string) (models.Model, error) {
	var model models.Model
	result := database.DB.First(&model, "id = ?", id)
	return model, result.Error
}

// FindByIDWithShares retrieves a model together with its share records.
// This is the shape the access evaluator needs.
func (r *ModelRepository) FindByIDWithShares(id string) (models.Model, error) {
	var model models.Model
	result := database.DB.Preload("Shares").First(&model, "id = ?", id)
	return model, result.Error
}

// FindOwned retrieves a model only if the given user owns it
func (r *ModelRepository) FindOwned(id, userID string) (models.Model, error) {
	var model models.Model
	result := database.DB.First(&model, "id = ? AND user_id = ?", id, userID)
	return model, result.Error
}

// FindAccessibleByUser retrieves all models the user owns or has a share on,
// most recently updated first
func (r *ModelRepository) FindAccessibleByUser(userID string) ([]models.Model, error) {
	var list []models.Model
	result := database.DB.
		Preload("User").
		Preload("Shares").
		Where("user_id = ? OR id IN (SELECT model_id FROM model_shares WHERE user_id = ?)", userID, userID).
		Order("updated_at desc").
		Find(&list)
	return list, result.Error
}

// Create inserts a new model into the database
func (r *ModelRepository) Create(model models.Model) (models.Model, error) {
	result := database.DB.Create(&model)
	return model, result.Error
}

// Save persists changes to an existing model. Associations are omitted so a
// model loaded with its shares does not re-write share rows.
func (r *ModelRepository) Save(model models.Model) (models.Model, error) {
	result := database.DB.Omit(clause.Associations).Save(&model)
	return model, result.Error
}

// Delete removes a model; the database cascades to blocks, requirements,
// links, shares and diagrams
func (r *ModelRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Model{}, "id = ?", id)
	return result.Error
}
