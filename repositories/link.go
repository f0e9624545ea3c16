package repositories

import (
	"github.com/blocktrace/database"
	"github.com/blocktrace/models"
)

// LinkRepository handles database operations for block-requirement links
type LinkRepository struct{}

// NewLinkRepository creates a new link repository instance
func NewLinkRepository() *LinkRepository {
	return &LinkRepository{}
}

// FindByID retrieves a link with its model loaded, for ownership checks
func (r *LinkRepository) FindByID(id string) (models.Link, error) {
	var link models.Link
	result := database.DB.Preload("Model").First(&link, "id = ?", id)
	return link, result.Error
}

// TripleExists checks whether a link already exists for the exact
// (model, block, requirement) triple
func (r *LinkRepository) TripleExists(modelID, blockID, requirementID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Link{}).
		Where("model_id = ? AND block_id = ? AND requirement_id = ?", modelID, blockID, requirementID).
		Count(&count).Error
	return count > 0, err
}

// FindByModelID retrieves all links of a model, newest first
func (r *LinkRepository) FindByModelID(modelID string) ([]models.Link, error) {
	var links []models.Link
	result := database.DB.
		Preload("Requirement").
		Where("model_id = ?", modelID).
		Order("created_at desc").
		Find(&links)
	return links, result.Error
}

// FindBareByModelID retrieves link rows without relations, the shape the
// traceability matrix consumes
func (r *LinkRepository) FindBareByModelID(modelID string) ([]models.Link, error) {
	var links []models.Link
	result := database.DB.Where("model_id = ?", modelID).Find(&links)
	return links, result.Error
}

// FindByModelAndBlock retrieves all links of one block in a model
func (r *LinkRepository) FindByModelAndBlock(modelID, blockID string) ([]models.Link, error) {
	var links []models.Link
	result := database.DB.
		Preload("Requirement").
		Where("model_id = ? AND block_id = ?", modelID, blockID).
		Order("created_at desc").
		Find(&links)
	return links, result.Error
}

// Create inserts a new link into the database
func (r *LinkRepository) Create(link models.Link) (models.Link, error) {
	result := database.DB.Create(&link)
	return link, result.Error
}

// Delete removes a link by ID
func (r *LinkRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Link{}, "id = ?", id)
	return result.Error
}
