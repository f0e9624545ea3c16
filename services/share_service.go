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

// ShareService handles granting, updating and revoking per-user permissions
// on models. All grant/revoke operations are owner-only.
type ShareService struct {
	shareRepo *repositories.ShareRepository
	userRepo  *repositories.UserRepository
	access    *AccessService
}

// NewShareService creates a new share service instance
func NewShareService() *ShareService {
	return &ShareService{
		shareRepo: repositories.NewShareRepository(),
		userRepo:  repositories.NewUserRepository(),
		access:    NewAccessService(),
	}
}

// ShareModel grants the user behind targetEmail a permission on the model.
// Sharing with yourself is invalid; re-sharing an already shared model
// updates the existing share's permission instead of duplicating it.
func (s *ShareService) ShareModel(ownerID string, req dto.ShareModelRequest) (models.ModelShare, error) {
	if _, err := s.access.RequireOwner(req.ModelID, ownerID); err != nil {
		return models.ModelShare{}, err
	}

	target, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ModelShare{}, fmt.Errorf("user with this email: %w", apperrors.ErrNotFound)
		}
		return models.ModelShare{}, err
	}

	if target.ID == ownerID {
		return models.ModelShare{}, fmt.Errorf("cannot share model with yourself: %w", apperrors.ErrValidation)
	}

	permission := models.PermissionView
	if req.Permission != "" {
		permission = models.Permission(req.Permission)
	}

	existing, err := s.shareRepo.FindByModelAndUser(req.ModelID, target.ID)
	if err == nil {
		existing.Permission = permission
		return s.shareRepo.Save(existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ModelShare{}, err
	}

	share := models.ModelShare{
		ModelID:    req.ModelID,
		UserID:     target.ID,
		Permission: permission,
	}

	return s.shareRepo.Create(share)
}

// ListShares retrieves all shares of a model. Owner only.
func (s *ShareService) ListShares(modelID, ownerID string) ([]models.ModelShare, error) {
	if _, err := s.access.RequireOwner(modelID, ownerID); err != nil {
		return nil, err
	}
	return s.shareRepo.FindByModelID(modelID)
}

// ListSharedWithMe retrieves every model shared with the user, with the
// model and owner summarized
func (s *ShareService) ListSharedWithMe(userID string) ([]dto.SharedModelItem, error) {
	shares, err := s.shareRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SharedModelItem, 0, len(shares))
	for _, share := range shares {
		items = append(items, dto.SharedModelItem{
			ID:         share.ID,
			Permission: share.Permission,
			SharedAt:   share.CreatedAt,
			Model: dto.SharedModelInfo{
				ID:          share.Model.ID,
				Name:        share.Model.Name,
				Description: share.Model.Description,
				Owner: dto.ModelOwner{
					ID:    share.Model.User.ID,
					Email: share.Model.User.Email,
					Name:  share.Model.User.Name,
				},
				CreatedAt: share.Model.CreatedAt,
				UpdatedAt: share.Model.UpdatedAt,
			},
		})
	}
	return items, nil
}

// RemoveShare revokes a share. The caller must own the share's model.
func (s *ShareService) RemoveShare(shareID, userID string) error {
	share, err := s.shareRepo.FindByID(shareID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("share: %w", apperrors.ErrNotFound)
		}
		return err
	}

	if share.Model.UserID != userID {
		return apperrors.ErrNotFoundOrDenied
	}

	return s.shareRepo.Delete(shareID)
}
