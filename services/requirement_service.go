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

// RequirementService handles business logic for requirements. Authorization
// is ownership only: model shares never expose another user's requirements.
type RequirementService struct {
	requirementRepo *repositories.RequirementRepository
	access          *AccessService
}

// NewRequirementService creates a new requirement service instance
func NewRequirementService() *RequirementService {
	return &RequirementService{
		requirementRepo: repositories.NewRequirementRepository(),
		access:          NewAccessService(),
	}
}

// ListRequirements retrieves all requirements owned by the user
func (s *RequirementService) ListRequirements(userID string) ([]models.Requirement, error) {
	return s.requirementRepo.FindByUserID(userID)
}

// CreateRequirement creates a requirement owned by the calling user,
// optionally scoped to a model
func (s *RequirementService) CreateRequirement(userID string, req dto.CreateRequirementRequest) (models.Requirement, error) {
	priority := models.PriorityMedium
	if req.Priority != "" {
		priority = models.RequirementPriority(req.Priority)
	}
	status := models.StatusOpen
	if req.Status != "" {
		status = models.RequirementStatus(req.Status)
	}

	requirement := models.Requirement{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      status,
		UserID:      userID,
		ModelID:     req.ModelID,
	}

	return s.requirementRepo.Create(requirement)
}

// UpdateRequirement patches a requirement the calling user owns
func (s *RequirementService) UpdateRequirement(requirementID, userID string, req dto.UpdateRequirementRequest) (models.Requirement, error) {
	requirement, err := s.requirementRepo.FindOwned(requirementID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Requirement{}, fmt.Errorf("requirement: %w", apperrors.ErrNotFound)
		}
		return models.Requirement{}, err
	}

	if req.Title != nil {
		requirement.Title = *req.Title
	}
	if req.Description != nil {
		requirement.Description = *req.Description
	}
	if req.Priority != nil {
		requirement.Priority = models.RequirementPriority(*req.Priority)
	}
	if req.Status != nil {
		requirement.Status = models.RequirementStatus(*req.Status)
	}
	if req.ModelID != nil {
		if *req.ModelID == "" {
			requirement.ModelID = nil
		} else {
			modelID := *req.ModelID
			requirement.ModelID = &modelID
		}
	}

	return s.requirementRepo.Save(requirement)
}

// DeleteRequirement removes a requirement the calling user owns; its links
// cascade away with it
func (s *RequirementService) DeleteRequirement(requirementID, userID string) error {
	if _, err := s.requirementRepo.FindOwned(requirementID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("requirement: %w", apperrors.ErrNotFound)
		}
		return err
	}
	return s.requirementRepo.Delete(requirementID)
}

// ListModelRequirements retrieves the requirements of a model that the
// calling user owns. Requires at least view access to the model, but a
// collaborator never sees the owner's requirements here, only their own.
func (s *RequirementService) ListModelRequirements(modelID, userID string) ([]models.Requirement, error) {
	if _, err := s.access.RequireAccess(modelID, userID, models.PermissionView); err != nil {
		return nil, err
	}
	return s.requirementRepo.FindByModelAndUser(modelID, userID)
}
