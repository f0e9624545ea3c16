package services

import (
	"errors"
	"fmt"

	"github.com/blocktrace/apperrors"
	"github.com/blocktrace/database"
	"github.com/blocktrace/models"
	"github.com/blocktrace/repositories"
	"gorm.io/gorm"
)

// LinkService handles business logic for block-requirement links.
// Link creation is owner-only on both the model and the requirement, which
// is stricter than the owner-or-share rule the block operations use.
type LinkService struct {
	linkRepo        *repositories.LinkRepository
	requirementRepo *repositories.RequirementRepository
	access          *AccessService
}

// NewLinkService creates a new link service instance
func NewLinkService() *LinkService {
	return &LinkService{
		linkRepo:        repositories.NewLinkRepository(),
		requirementRepo: repositories.NewRequirementRepository(),
		access:          NewAccessService(),
	}
}

// buildReplacementLinks produces the link rows for a full replace, one per
// distinct block id. Duplicates in the input collapse to a single row so the
// bulk insert cannot trip the triple uniqueness index against itself.
func buildReplacementLinks(requirementID, modelID string, blockIDs []string) []models.Link {
	seen := make(map[string]bool, len(blockIDs))
	links := make([]models.Link, 0, len(blockIDs))
	for _, blockID := range blockIDs {
		if blockID == "" || seen[blockID] {
			continue
		}
		seen[blockID] = true
		links = append(links, models.Link{
			ModelID:       modelID,
			BlockID:       blockID,
			RequirementID: requirementID,
		})
	}
	return links
}

// CreateLink links one block to one requirement within a model. The caller
// must own both the model and the requirement; an existing identical triple
// is a conflict.
func (s *LinkService) CreateLink(userID, modelID, blockID, requirementID string) (models.Link, error) {
	if _, err := s.access.RequireOwner(modelID, userID); err != nil {
		return models.Link{}, err
	}

	if _, err := s.requirementRepo.FindOwned(requirementID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Link{}, fmt.Errorf("requirement: %w", apperrors.ErrNotFoundOrDenied)
		}
		return models.Link{}, err
	}

	exists, err := s.linkRepo.TripleExists(modelID, blockID, requirementID)
	if err != nil {
		return models.Link{}, err
	}
	if exists {
		return models.Link{}, fmt.Errorf("link already exists: %w", apperrors.ErrConflict)
	}

	link := models.Link{
		ModelID:       modelID,
		BlockID:       blockID,
		RequirementID: requirementID,
	}

	return s.linkRepo.Create(link)
}

// DeleteLink removes one link. The caller must own the link's model.
func (s *LinkService) DeleteLink(linkID, userID string) error {
	link, err := s.linkRepo.FindByID(linkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("link: %w", apperrors.ErrNotFound)
		}
		return err
	}

	if link.Model.UserID != userID {
		return apperrors.ErrNotFoundOrDenied
	}

	return s.linkRepo.Delete(linkID)
}

// ReplaceRequirementLinks replaces the full set of links of a requirement in
// a model: every existing link goes away and one link per given block comes
// back, in a single transaction. An empty block set just clears the links.
// Requires requirement ownership and edit access to the model.
func (s *LinkService) ReplaceRequirementLinks(requirementID, userID, modelID string, blockIDs []string) error {
	if _, err := s.requirementRepo.FindOwned(requirementID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("requirement: %w", apperrors.ErrNotFound)
		}
		return err
	}

	if _, err := s.access.RequireAccess(modelID, userID, models.PermissionEdit); err != nil {
		return err
	}

	links := buildReplacementLinks(requirementID, modelID, blockIDs)

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Link{}, "requirement_id = ? AND model_id = ?", requirementID, modelID).Error; err != nil {
			return err
		}
		if len(links) == 0 {
			return nil
		}
		return tx.Create(&links).Error
	})
}

// UnlinkBlock removes the link(s) between a requirement the caller owns and
// one block. No matching link is a not-found.
func (s *LinkService) UnlinkBlock(requirementID, blockID, userID string) error {
	if _, err := s.requirementRepo.FindOwned(requirementID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("requirement: %w", apperrors.ErrNotFound)
		}
		return err
	}

	result := database.DB.Delete(&models.Link{}, "requirement_id = ? AND block_id = ?", requirementID, blockID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("link: %w", apperrors.ErrNotFound)
	}
	return nil
}

// ListModelLinks retrieves all links of a model the caller owns
func (s *LinkService) ListModelLinks(modelID, userID string) ([]models.Link, error) {
	if _, err := s.access.RequireOwner(modelID, userID); err != nil {
		return nil, err
	}
	return s.linkRepo.FindByModelID(modelID)
}

// ListBlockLinks retrieves all links of one block in a model the caller owns
func (s *LinkService) ListBlockLinks(modelID, blockID, userID string) ([]models.Link, error) {
	if _, err := s.access.RequireOwner(modelID, userID); err != nil {
		return nil, err
	}
	return s.linkRepo.FindByModelAndBlock(modelID, blockID)
}
