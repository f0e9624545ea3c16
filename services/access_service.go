package services

import (
	"errors"

	"github.com/blocktrace/apperrors"
	"github.com/blocktrace/models"
	"github.com/blocktrace/repositories"
	"gorm.io/gorm"
)

// EvaluateAccess is the single authorization rule for models. The owner
// implicitly holds edit; a share satisfies the required level per
// Permission.Satisfies. Pure function so the rule is testable without a
// database.
func EvaluateAccess(ownerID string, shares []models.ModelShare, userID string, required models.Permission) bool {
	if userID == ownerID {
		return true
	}
	for _, share := range shares {
		if share.UserID == userID && share.Permission.Satisfies(required) {
			return true
		}
	}
	return false
}

// AccessService gates every disclosive or mutating operation on a model and
// its owned sub-entities
type AccessService struct {
	modelRepo *repositories.ModelRepository
}

// NewAccessService creates a new access service instance
func NewAccessService() *AccessService {
	return &AccessService{
		modelRepo: repositories.NewModelRepository(),
	}
}

// RequireAccess loads the model and applies the access rule. A missing model
// and a denied caller yield the same ErrNotFoundOrDenied so callers cannot
// probe for model existence.
func (s *AccessService) RequireAccess(modelID, userID string, required models.Permission) (models.Model, error) {
	model, err := s.modelRepo.FindByIDWithShares(modelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Model{}, apperrors.ErrNotFoundOrDenied
		}
		return models.Model{}, err
	}

	if !EvaluateAccess(model.UserID, model.Shares, userID, required) {
		return models.Model{}, apperrors.ErrNotFoundOrDenied
	}

	return model, nil
}

// RequireOwner loads the model only if the caller owns it. Used by the
// owner-only operations: model delete, sharing, and link creation.
func (s *AccessService) RequireOwner(modelID, userID string) (models.Model, error) {
	model, err := s.modelRepo.FindOwned(modelID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Model{}, apperrors.ErrNotFoundOrDenied
		}
		return models.Model{}, err
	}
	return model, nil
}
