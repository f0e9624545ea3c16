package services

import (
	"fmt"

	"github.com/blocktrace/apperrors"
	"github.com/blocktrace/database"
	"github.com/blocktrace/dto"
	"github.com/blocktrace/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ImportService recreates a model from an export document. Everything in the
// document gets fresh ids and the importing user becomes the owner.
type ImportService struct{}

// NewImportService creates a new import service instance
func NewImportService() *ImportService {
	return &ImportService{}
}

// PlanImportLinks maps exported links onto the new requirement ids. Links
// whose embedded requirement id is absent from the mapping came from a
// different export run and are dropped.
func PlanImportLinks(links []dto.ExportLink, requirementIDs map[string]string, modelID string) []models.Link {
	planned := make([]models.Link, 0, len(links))
	for _, link := range links {
		newRequirementID, ok := requirementIDs[link.Requirement.ID]
		if !ok {
			continue
		}
		planned = append(planned, models.Link{
			ModelID:       modelID,
			BlockID:       link.BlockID,
			RequirementID: newRequirementID,
		})
	}
	return planned
}

// ImportJSON creates a new model, its requirements and its links from an
// export document in a single transaction. Block ids inside the geometry
// document are kept as-is so the recreated links stay aligned with the canvas.
func (s *ImportService) ImportJSON(userID string, req dto.ImportRequest) (models.Model, error) {
	if len(req.ImportData.Diagram.DiagramData) == 0 {
		return models.Model{}, fmt.Errorf("import document has no diagram data: %w", apperrors.ErrValidation)
	}

	description := req.ImportData.Diagram.Description
	if description == "" {
		description = fmt.Sprintf("Imported from %s", req.ImportData.Metadata.ModelName)
	}

	model := models.Model{
		Name:        req.ModelName,
		Description: description,
		DiagramData: datatypes.JSON(req.ImportData.Diagram.DiagramData),
		UserID:      userID,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model).Error; err != nil {
			return err
		}

		requirementIDs := make(map[string]string, len(req.ImportData.Requirements))
		for _, exported := range req.ImportData.Requirements {
			priority := exported.Priority
			if priority == "" {
				priority = models.PriorityMedium
			}
			status := exported.Status
			if status == "" {
				status = models.StatusOpen
			}

			requirement := models.Requirement{
				Title:       exported.Title,
				Description: exported.Description,
				Priority:    priority,
				Status:      status,
				UserID:      userID,
				ModelID:     &model.ID,
			}
			if err := tx.Create(&requirement).Error; err != nil {
				return err
			}
			requirementIDs[exported.ID] = requirement.ID
		}

		links := PlanImportLinks(req.ImportData.Links, requirementIDs, model.ID)
		if len(links) == 0 {
			return nil
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		return models.Model{}, err
	}

	return model, nil
}
