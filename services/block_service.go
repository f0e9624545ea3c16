package services

import (
	"errors"
	"fmt"

	"github.com/blocktrace/apperrors"
	"github.com/blocktrace/database"
	"github.com/blocktrace/dto"
	"github.com/blocktrace/models"
	"github.com/blocktrace/repositories"
	"gorm.io/gorm"
)

// BlockService handles business logic for the per-model block hierarchy
type BlockService struct {
	blockRepo *repositories.BlockRepository
	access    *AccessService
}

// NewBlockService creates a new block service instance
func NewBlockService() *BlockService {
	return &BlockService{
		blockRepo: repositories.NewBlockRepository(),
		access:    NewAccessService(),
	}
}

// parentIndex maps block id to parent id for the ancestry walk
func parentIndex(blocks []models.Block) map[string]*string {
	index := make(map[string]*string, len(blocks))
	for _, block := range blocks {
		index[block.ID] = block.ParentID
	}
	return index
}

// wouldCreateCycle walks up from the proposed parent via parent ids and
// reports whether blockID is an ancestor of it. The walk tolerates corrupted
// chains: a missing parent row or a pre-existing loop not involving blockID
// terminates the walk and counts as acyclic.
func wouldCreateCycle(blockID, proposedParentID string, parents map[string]*string) bool {
	visited := make(map[string]bool)
	current := proposedParentID

	for {
		if current == blockID {
			return true
		}
		if visited[current] {
			return false
		}
		visited[current] = true

		parent, ok := parents[current]
		if !ok || parent == nil {
			return false
		}
		current = *parent
	}
}

func toBlockSummary(block models.Block) dto.BlockSummary {
	return dto.BlockSummary{
		ID:   block.ID,
		Name: block.Name,
		Type: block.Type,
	}
}

func toBlockResponse(block models.Block) dto.BlockResponse {
	response := dto.BlockResponse{
		ID:          block.ID,
		Name:        block.Name,
		Description: block.Description,
		Type:        block.Type,
		ModelID:     block.ModelID,
		ParentID:    block.ParentID,
		Children:    make([]dto.BlockSummary, 0, len(block.Children)),
		CreatedAt:   block.CreatedAt,
		UpdatedAt:   block.UpdatedAt,
	}
	if block.Parent != nil {
		summary := toBlockSummary(*block.Parent)
		response.Parent = &summary
	}
	for _, child := range block.Children {
		response.Children = append(response.Children, toBlockSummary(child))
	}
	return response
}

// CreateBlock creates a block in a model. Requires edit access; a parent, if
// given, must already exist in the same model.
func (s *BlockService) CreateBlock(userID string, req dto.CreateBlockRequest) (dto.BlockResponse, error) {
	if _, err := s.access.RequireAccess(req.ModelID, userID, models.PermissionEdit); err != nil {
		return dto.BlockResponse{}, err
	}

	if req.ParentID != nil {
		if _, err := s.blockRepo.FindInModel(*req.ParentID, req.ModelID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.BlockResponse{}, fmt.Errorf("parent block: %w", apperrors.ErrNotFound)
			}
			return dto.BlockResponse{}, err
		}
	}

	blockType := models.BlockTypeComponent
	if req.Type != "" {
		blockType = models.BlockType(req.Type)
	}

	block := models.Block{
		Name:        req.Name,
		Description: req.Description,
		Type:        blockType,
		ModelID:     req.ModelID,
		ParentID:    req.ParentID,
	}

	block, err := s.blockRepo.Create(block)
	if err != nil {
		return dto.BlockResponse{}, err
	}

	block, err = s.blockRepo.FindByIDWithRelations(block.ID)
	if err != nil {
		return dto.BlockResponse{}, err
	}

	return toBlockResponse(block), nil
}

// UpdateBlock patches a block. A parent change is validated inside one
// transaction: the new parent must exist in the same model, must not be the
// block itself, and must not be one of the block's descendants.
func (s *BlockService) UpdateBlock(blockID, userID string, req dto.UpdateBlockRequest) (dto.BlockResponse, error) {
	block, err := s.blockRepo.FindByID(blockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.BlockResponse{}, fmt.Errorf("block: %w", apperrors.ErrNotFound)
		}
		return dto.BlockResponse{}, err
	}

	if _, err := s.access.RequireAccess(block.ModelID, userID, models.PermissionEdit); err != nil {
		return dto.BlockResponse{}, err
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if req.ParentID != nil {
			switch newParent := *req.ParentID; {
			case newParent == "":
				// Empty string detaches the block and promotes it to a root
				block.ParentID = nil
			case block.ParentID == nil || newParent != *block.ParentID:
				if newParent == block.ID {
					return fmt.Errorf("block cannot be its own parent: %w", apperrors.ErrValidation)
				}

				if err := tx.First(&models.Block{}, "id = ? AND model_id = ?", newParent, block.ModelID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("parent block: %w", apperrors.ErrNotFound)
					}
					return err
				}

				// The ancestry walk and the write share one transaction so a
				// concurrent re-parent cannot slip a cycle past the check
				var siblings []models.Block
				if err := tx.Where("model_id = ?", block.ModelID).Find(&siblings).Error; err != nil {
					return err
				}
				if wouldCreateCycle(block.ID, newParent, parentIndex(siblings)) {
					return apperrors.ErrCircularReference
				}

				parent := newParent
				block.ParentID = &parent
			}
		}

		if req.Name != nil {
			block.Name = *req.Name
		}
		if req.Description != nil {
			block.Description = *req.Description
		}
		if req.Type != nil {
			block.Type = models.BlockType(*req.Type)
		}

		return tx.Save(&block).Error
	})
	if err != nil {
		return dto.BlockResponse{}, err
	}

	block, err = s.blockRepo.FindByIDWithRelations(block.ID)
	if err != nil {
		return dto.BlockResponse{}, err
	}

	return toBlockResponse(block), nil
}

// promotionTargets returns the ids of the blocks that must become roots when
// blockID is deleted: its direct children and nothing else. Grandchildren keep
// their parent pointers into the promoted subtrees.
func promotionTargets(blockID string, blocks []models.Block) []string {
	targets := make([]string, 0)
	for _, block := range blocks {
		if block.ParentID != nil && *block.ParentID == blockID {
			targets = append(targets, block.ID)
		}
	}
	return targets
}

// DeleteBlock removes a block after promoting its direct children to roots.
// Children are never cascade-deleted; promotion and deletion commit together.
func (s *BlockService) DeleteBlock(blockID, userID string) error {
	block, err := s.blockRepo.FindByID(blockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("block: %w", apperrors.ErrNotFound)
		}
		return err
	}

	if _, err := s.access.RequireAccess(block.ModelID, userID, models.PermissionEdit); err != nil {
		return err
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		var siblings []models.Block
		if err := tx.Where("model_id = ?", block.ModelID).Find(&siblings).Error; err != nil {
			return err
		}

		if targets := promotionTargets(block.ID, siblings); len(targets) > 0 {
			if err := tx.Model(&models.Block{}).
				Where("id IN ?", targets).
				Update("parent_id", nil).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Block{}, "id = ?", block.ID).Error
	})
}

// ListModelBlocks returns all blocks of a model ordered by parent id then
// name, each with shallow parent and children summaries. Requires at least
// view access.
func (s *BlockService) ListModelBlocks(modelID, userID string) ([]dto.BlockResponse, error) {
	if _, err := s.access.RequireAccess(modelID, userID, models.PermissionView); err != nil {
		return nil, err
	}

	blocks, err := s.blockRepo.FindByModelID(modelID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.BlockResponse, 0, len(blocks))
	for _, block := range blocks {
		responses = append(responses, toBlockResponse(block))
	}
	return responses, nil
}
