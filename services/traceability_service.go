package services

import (
	"github.com/blocktrace/dto"
	"github.com/blocktrace/models"
	"github.com/blocktrace/repositories"
)

// TraceabilityService builds the requirement-to-block coverage matrix.
// Read-only aggregation; nothing is cached, the matrix is recomputed on
// every call.
type TraceabilityService struct {
	requirementRepo *repositories.RequirementRepository
	blockRepo       *repositories.BlockRepository
	linkRepo        *repositories.LinkRepository
	access          *AccessService
}

// NewTraceabilityService creates a new traceability service instance
func NewTraceabilityService() *TraceabilityService {
	return &TraceabilityService{
		requirementRepo: repositories.NewRequirementRepository(),
		blockRepo:       repositories.NewBlockRepository(),
		linkRepo:        repositories.NewLinkRepository(),
		access:          NewAccessService(),
	}
}

// BuildMatrix annotates each requirement with its linked block ids and each
// block with its linked requirement ids. Pure function over the loaded rows.
func BuildMatrix(requirements []models.Requirement, blocks []models.Block, links []models.Link) dto.TraceabilityMatrix {
	matrix := dto.TraceabilityMatrix{
		Requirements: make([]dto.RequirementTrace, 0, len(requirements)),
		Blocks:       make([]dto.BlockTrace, 0, len(blocks)),
	}

	for _, requirement := range requirements {
		trace := dto.RequirementTrace{
			Requirement:  requirement,
			LinkedBlocks: make([]string, 0),
		}
		for _, link := range links {
			if link.RequirementID == requirement.ID {
				trace.LinkedBlocks = append(trace.LinkedBlocks, link.BlockID)
			}
		}
		matrix.Requirements = append(matrix.Requirements, trace)
	}

	for _, block := range blocks {
		trace := dto.BlockTrace{
			Block:              block,
			LinkedRequirements: make([]string, 0),
		}
		for _, link := range links {
			if link.BlockID == block.ID {
				trace.LinkedRequirements = append(trace.LinkedRequirements, link.RequirementID)
			}
		}
		matrix.Blocks = append(matrix.Blocks, trace)
	}

	return matrix
}

// GetTraceability loads the caller's requirements for the model, all blocks
// and all links, and derives the matrix. Requires at least view access; a
// collaborator's matrix only ever contains their own requirements.
func (s *TraceabilityService) GetTraceability(modelID, userID string) (dto.TraceabilityResponse, error) {
	if _, err := s.access.RequireAccess(modelID, userID, models.PermissionView); err != nil {
		return dto.TraceabilityResponse{}, err
	}

	requirements, err := s.requirementRepo.FindByModelAndUserOrdered(modelID, userID)
	if err != nil {
		return dto.TraceabilityResponse{}, err
	}

	blocks, err := s.blockRepo.FindAllInModel(modelID)
	if err != nil {
		return dto.TraceabilityResponse{}, err
	}

	links, err := s.linkRepo.FindBareByModelID(modelID)
	if err != nil {
		return dto.TraceabilityResponse{}, err
	}

	return dto.TraceabilityResponse{
		Requirements: requirements,
		Blocks:       blocks,
		Links:        links,
		Matrix:       BuildMatrix(requirements, blocks, links),
	}, nil
}
