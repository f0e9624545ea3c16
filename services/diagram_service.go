package services

import (
	"errors"
	"fmt"

	"github.com/blocktrace/apperrors"
	"github.com/blocktrace/dto"
	"github.com/blocktrace/models"
	"github.com/blocktrace/repositories"
	"gorm.io/gorm"
)

// DiagramService handles diagrams and the placement of blocks on them.
// Placement is presentation state: it never touches the block hierarchy.
type DiagramService struct {
	diagramRepo *repositories.DiagramRepository
	blockRepo   *repositories.BlockRepository
	access      *AccessService
}

// NewDiagramService creates a new diagram service instance
func NewDiagramService() *DiagramService {
	return &DiagramService{
		diagramRepo: repositories.NewDiagramRepository(),
		blockRepo:   repositories.NewBlockRepository(),
		access:      NewAccessService(),
	}
}

// requireDiagram loads a diagram and checks the caller's access to its model
func (s *DiagramService) requireDiagram(diagramID, userID string, required models.Permission) (models.Diagram, error) {
	diagram, err := s.diagramRepo.FindByID(diagramID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Diagram{}, apperrors.ErrNotFoundOrDenied
		}
		return models.Diagram{}, err
	}

	if _, err := s.access.RequireAccess(diagram.ModelID, userID, required); err != nil {
		return models.Diagram{}, err
	}

	return diagram, nil
}

// CreateDiagram creates a named view on a model. Any access suffices.
func (s *DiagramService) CreateDiagram(userID string, req dto.CreateDiagramRequest) (models.Diagram, error) {
	if _, err := s.access.RequireAccess(req.ModelID, userID, models.PermissionView); err != nil {
		return models.Diagram{}, err
	}

	diagram := models.Diagram{
		Name:    req.Name,
		Type:    models.DiagramType(req.Type),
		ModelID: req.ModelID,
	}

	return s.diagramRepo.Create(diagram)
}

// ListModelDiagrams retrieves all diagrams of a model, oldest first
func (s *DiagramService) ListModelDiagrams(modelID, userID string) ([]models.Diagram, error) {
	if _, err := s.access.RequireAccess(modelID, userID, models.PermissionView); err != nil {
		return nil, err
	}
	return s.diagramRepo.FindByModelID(modelID)
}

// GetDiagram retrieves a diagram with its block placements
func (s *DiagramService) GetDiagram(diagramID, userID string) (models.Diagram, error) {
	if _, err := s.requireDiagram(diagramID, userID, models.PermissionView); err != nil {
		return models.Diagram{}, err
	}
	return s.diagramRepo.FindByIDWithBlocks(diagramID)
}

// UpdateDiagram renames or retypes a diagram. Requires edit access.
func (s *DiagramService) UpdateDiagram(diagramID, userID string, req dto.UpdateDiagramRequest) (models.Diagram, error) {
	diagram, err := s.requireDiagram(diagramID, userID, models.PermissionEdit)
	if err != nil {
		return models.Diagram{}, err
	}

	if req.Name != nil {
		diagram.Name = *req.Name
	}
	if req.Type != nil {
		diagram.Type = models.DiagramType(*req.Type)
	}

	return s.diagramRepo.Save(diagram)
}

// DeleteDiagram removes a diagram and its placements. Requires edit access.
func (s *DiagramService) DeleteDiagram(diagramID, userID string) error {
	if _, err := s.requireDiagram(diagramID, userID, models.PermissionEdit); err != nil {
		return err
	}
	return s.diagramRepo.Delete(diagramID)
}

// PlaceBlock puts a block on a diagram at a position, or moves it if it is
// already there. The block must belong to the diagram's model. Width and
// height keep their current values when omitted.
func (s *DiagramService) PlaceBlock(diagramID, blockID, userID string, req dto.PlaceBlockRequest) (models.DiagramBlock, error) {
	diagram, err := s.requireDiagram(diagramID, userID, models.PermissionEdit)
	if err != nil {
		return models.DiagramBlock{}, err
	}

	if _, err := s.blockRepo.FindInModel(blockID, diagram.ModelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DiagramBlock{}, fmt.Errorf("block not found in this model: %w", apperrors.ErrNotFound)
		}
		return models.DiagramBlock{}, err
	}

	placement, err := s.diagramRepo.FindPlacement(diagramID, blockID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DiagramBlock{}, err
		}
		placement = models.DiagramBlock{
			DiagramID: diagramID,
			BlockID:   blockID,
			X:         req.X,
			Y:         req.Y,
			Width:     120,
			Height:    80,
		}
		if req.Width != nil {
			placement.Width = *req.Width
		}
		if req.Height != nil {
			placement.Height = *req.Height
		}
		return s.diagramRepo.CreatePlacement(placement)
	}

	placement.X = req.X
	placement.Y = req.Y
	if req.Width != nil {
		placement.Width = *req.Width
	}
	if req.Height != nil {
		placement.Height = *req.Height
	}
	return s.diagramRepo.SavePlacement(placement)
}

// RemoveBlock takes a block off a diagram. Only the placement row goes away;
// the block itself is untouched.
func (s *DiagramService) RemoveBlock(diagramID, blockID, userID string) error {
	if _, err := s.requireDiagram(diagramID, userID, models.PermissionEdit); err != nil {
		return err
	}

	affected, err := s.diagramRepo.DeletePlacement(diagramID, blockID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("placement: %w", apperrors.ErrNotFound)
	}
	return nil
}
