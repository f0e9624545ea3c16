package repositories

import (
	"github.com/blocktrace/database"
	"github.com/blocktrace/models"
)

// RequirementRepository handles database operations for requirements
type RequirementRepository struct{}

// NewRequirementRepository creates a new requirement repository instance
func NewRequirementRepository() *RequirementRepository {
	return &RequirementRepository{}
}

// FindOwned retrieves a requirement only if the given user owns it.
// Ownership is the only authorization axis for requirements.
func (r *RequirementRepository) FindOwned(id, userID string) (models.Requirement, error) {
	var requirement models.Requirement
	result := database.DB.First(&requirement, "id = ? AND user_id = ?", id, userID)
	return requirement, result.Error
}

// FindByUserID retrieves all requirements of a user, newest first
func (r *RequirementRepository) FindByUserID(userID string) ([]models.Requirement, error) {
	var requirements []models.Requirement
	result := database.DB.
		Preload("Model").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&requirements)
	return requirements, result.Error
}

// FindByModelAndUser retrieves the requirements of a model that the given
// user owns. A collaborator viewing a shared model only ever sees their own
// requirements here, never the owner's.
func (r *RequirementRepository) FindByModelAndUser(modelID, userID string) ([]models.Requirement, error) {
	var requirements []models.Requirement
	result := database.DB.
		Preload("Links").
		Where("model_id = ? AND user_id = ?", modelID, userID).
		Order("created_at desc").
		Find(&requirements)
	return requirements, result.Error
}

// FindByModelAndUserOrdered is FindByModelAndUser sorted by title, the shape
// the traceability matrix uses
func (r *RequirementRepository) FindByModelAndUserOrdered(modelID, userID string) ([]models.Requirement, error) {
	var requirements []models.Requirement
	result := database.DB.
		Where("model_id = ? AND user_id = ?", modelID, userID).
		Order("title asc").
		Find(&requirements)
	return requirements, result.Error
}

// FindByModelID retrieves every requirement scoped to a model regardless of
// owner. Only the export path uses this shape.
func (r *RequirementRepository) FindByModelID(modelID string) ([]models.Requirement, error) {
	var requirements []models.Requirement
	result := database.DB.
		Where("model_id = ?", modelID).
		Order("created_at asc").
		Find(&requirements)
	return requirements, result.Error
}

// Create inserts a new requirement into the database
func (r *RequirementRepository) Create(requirement models.Requirement) (models.Requirement, error) {
	result := database.DB.Create(&requirement)
	return requirement, result.Error
}

// Save persists changes to an existing requirement
func (r *RequirementRepository) Save(requirement models.Requirement) (models.Requirement, error) {
	result := database.DB.Save(&requirement)
	return requirement, result.Error
}

// Delete removes a requirement; links cascade away with it
func (r *RequirementRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Requirement{}, "id = ?", id)
	return result.Error
}
