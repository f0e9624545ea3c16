package repositories

import (
	"github.com/blocktrace/database"
	"github.com/blocktrace/models"
)

// DiagramRepository handles database operations for diagrams and their
// block placements
type DiagramRepository struct{}

// NewDiagramRepository creates a new diagram repository instance
func NewDiagramRepository() *DiagramRepository {
	return &DiagramRepository{}
}

// FindByID retrieves a diagram by its ID
func (r *DiagramRepository) FindByID(id string) (models.Diagram, error) {
	var diagram models.Diagram
	result := database.DB.First(&diagram, "id = ?", id)
	return diagram, result.Error
}

// FindByIDWithBlocks retrieves a diagram with its block placements loaded
func (r *DiagramRepository) FindByIDWithBlocks(id string) (models.Diagram, error) {
	var diagram models.Diagram
	result := database.DB.
		Preload("DiagramBlocks").
		Preload("DiagramBlocks.Block").
		First(&diagram, "id = ?", id)
	return diagram, result.Error
}

// FindByModelID retrieves all diagrams of a model, oldest first
func (r *DiagramRepository) FindByModelID(modelID string) ([]models.Diagram, error) {
	var diagrams []models.Diagram
	result := database.DB.
		Preload("DiagramBlocks").
		Where("model_id = ?", modelID).
		Order("created_at asc").
		Find(&diagrams)
	return diagrams, result.Error
}

// Create inserts a new diagram into the database
func (r *DiagramRepository) Create(diagram models.Diagram) (models.Diagram, error) {
	result := database.DB.Create(&diagram)
	return diagram, result.Error
}

// Save persists changes to an existing diagram
func (r *DiagramRepository) Save(diagram models.Diagram) (models.Diagram, error) {
	result := database.DB.Save(&diagram)
	return diagram, result.Error
}

// Delete removes a diagram; placements cascade away with it
func (r *DiagramRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Diagram{}, "id = ?", id)
	return result.Error
}

// FindPlacement retrieves the placement row for a (diagram, block) pair
func (r *DiagramRepository) FindPlacement(diagramID, blockID string) (models.DiagramBlock, error) {
	var placement models.DiagramBlock
	result := database.DB.First(&placement, "diagram_id = ? AND block_id = ?", diagramID, blockID)
	return placement, result.Error
}

// CreatePlacement inserts a new placement row
func (r *DiagramRepository) CreatePlacement(placement models.DiagramBlock) (models.DiagramBlock, error) {
	result := database.DB.Create(&placement)
	return placement, result.Error
}

// SavePlacement persists changes to an existing placement row
func (r *DiagramRepository) SavePlacement(placement models.DiagramBlock) (models.DiagramBlock, error) {
	result := database.DB.Save(&placement)
	return placement, result.Error
}

// DeletePlacement removes the placement row for a (diagram, block) pair and
// reports how many rows matched. The block itself is never touched.
func (r *DiagramRepository) DeletePlacement(diagramID, blockID string) (int64, error) {
	result := database.DB.Delete(&models.DiagramBlock{}, "diagram_id = ? AND block_id = ?", diagramID, blockID)
	return result.RowsAffected, result.Error
}
