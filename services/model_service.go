package services

import (
	"encoding/json"

	"github.com/blocktrace/dto"
	"github.com/blocktrace/models"
	"github.com/blocktrace/repositories"
	"gorm.io/datatypes"
)

// ModelService handles business logic for models
type ModelService struct {
	modelRepo *repositories.ModelRepository
	userRepo  *repositories.UserRepository
	access    *AccessService
}

// NewModelService creates a new model service instance
func NewModelService() *ModelService {
	return &ModelService{
		modelRepo: repositories.NewModelRepository(),
		userRepo:  repositories.NewUserRepository(),
		access:    NewAccessService(),
	}
}

// effectivePermission reports the caller's level on a model: "owner" for the
// owning user, otherwise the share permission
func effectivePermission(model models.Model, userID string) string {
	if model.UserID == userID {
		return "owner"
	}
	for _, share := range model.Shares {
		if share.UserID == userID {
			return string(share.Permission)
		}
	}
	return ""
}

func toModelResponse(model models.Model, userID string) dto.ModelResponse {
	return dto.ModelResponse{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		DiagramData: json.RawMessage(model.DiagramData),
		Owner: dto.ModelOwner{
			ID:    model.User.ID,
			Email: model.User.Email,
			Name:  model.User.Name,
		},
		Permission: effectivePermission(model, userID),
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

// ListModels retrieves all models the user owns or has been granted a share
// on, each annotated with the caller's effective permission
func (s *ModelService) ListModels(userID string) ([]dto.ModelResponse, error) {
	list, err := s.modelRepo.FindAccessibleByUser(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ModelResponse, 0, len(list))
	for _, model := range list {
		responses = append(responses, toModelResponse(model, userID))
	}
	return responses, nil
}

// GetModel retrieves a single model, requiring at least view access
func (s *ModelService) GetModel(modelID, userID string) (dto.ModelResponse, error) {
	model, err := s.access.RequireAccess(modelID, userID, models.PermissionView)
	if err != nil {
		return dto.ModelResponse{}, err
	}

	owner, err := s.userRepo.FindByID(model.UserID)
	if err != nil {
		return dto.ModelResponse{}, err
	}
	model.User = owner

	return toModelResponse(model, userID), nil
}

// CreateModel creates a new model owned by the calling user
func (s *ModelService) CreateModel(userID string, req dto.CreateModelRequest) (dto.ModelResponse, error) {
	model := models.Model{
		Name:        req.Name,
		Description: req.Description,
		DiagramData: datatypes.JSON(req.DiagramData),
		UserID:      userID,
	}

	model, err := s.modelRepo.Create(model)
	if err != nil {
		return dto.ModelResponse{}, err
	}

	owner, err := s.userRepo.FindByID(userID)
	if err != nil {
		return dto.ModelResponse{}, err
	}
	model.User = owner

	return toModelResponse(model, userID), nil
}

// UpdateModel updates a model's name, description or geometry document.
// Requires edit access; nil fields are left untouched.
func (s *ModelService) UpdateModel(modelID, userID string, req dto.UpdateModelRequest) (dto.ModelResponse, error) {
	model, err := s.access.RequireAccess(modelID, userID, models.PermissionEdit)
	if err != nil {
		return dto.ModelResponse{}, err
	}

	if req.Name != nil {
		model.Name = *req.Name
	}
	if req.Description != nil {
		model.Description = *req.Description
	}
	if req.DiagramData != nil {
		model.DiagramData = datatypes.JSON(req.DiagramData)
	}

	model, err = s.modelRepo.Save(model)
	if err != nil {
		return dto.ModelResponse{}, err
	}

	owner, err := s.userRepo.FindByID(model.UserID)
	if err != nil {
		return dto.ModelResponse{}, err
	}
	model.User = owner

	return toModelResponse(model, userID), nil
}

// DeleteModel removes a model and everything it owns. Owner only; the
// database cascades to blocks, requirements, links, shares and diagrams.
func (s *ModelService) DeleteModel(modelID, userID string) error {
	if _, err := s.access.RequireOwner(modelID, userID); err != nil {
		return err
	}
	return s.modelRepo.Delete(modelID)
}
