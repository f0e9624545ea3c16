package repositories

import (
	"github.com/blocktrace/database"
	"github.com/blocktrace/models"
)

// BlockRepository handles database operations for blocks
type BlockRepository struct{}

// NewBlockRepository creates a new block repository instance
func NewBlockRepository() *BlockRepository {
	return &BlockRepository{}
}

// FindByID retrieves a block by its ID
func (r *BlockRepository) FindByID(id string) (models.Block, error) {
	var block models.Block
	result := database.DB.First(&block, "id = ?", id)
	return block, result.Error
}

// FindByIDWithRelations retrieves a block with its parent and children loaded
func (r *BlockRepository) FindByIDWithRelations(id string) (models.Block, error) {
	var block models.Block
	result := database.DB.Preload("Parent").Preload("Children").First(&block, "id = ?", id)
	return block, result.Error
}

// FindInModel retrieves a block only if it belongs to the given model
func (r *BlockRepository) FindInModel(id, modelID string) (models.Block, error) {
	var block models.Block
	result := database.DB.First(&block, "id = ? AND model_id = ?", id, modelID)
	return block, result.Error
}

// FindByModelID retrieves all blocks of a model with parent and children
// loaded, ordered by parent id then name
func (r *BlockRepository) FindByModelID(modelID string) ([]models.Block, error) {
	var blocks []models.Block
	result := database.DB.
		Preload("Parent").
		Preload("Children").
		Where("model_id = ?", modelID).
		Order("parent_id asc, name asc").
		Find(&blocks)
	return blocks, result.Error
}

// FindAllInModel retrieves the bare block rows of a model, no relations,
// sorted by name. Used by the cycle-check ancestry walk and the
// traceability matrix.
func (r *BlockRepository) FindAllInModel(modelID string) ([]models.Block, error) {
	var blocks []models.Block
	result := database.DB.Where("model_id = ?", modelID).Order("name asc").Find(&blocks)
	return blocks, result.Error
}

// Create inserts a new block into the database
func (r *BlockRepository) Create(block models.Block) (models.Block, error) {
	result := database.DB.Create(&block)
	return block, result.Error
}
