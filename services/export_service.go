package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/blocktrace/dto"
	"github.com/blocktrace/models"
	"github.com/blocktrace/repositories"
	"github.com/blocktrace/utils"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExportService produces the JSON and XMI export documents for a model.
// Read-only; view access suffices.
type ExportService struct {
	userRepo        *repositories.UserRepository
	requirementRepo *repositories.RequirementRepository
	linkRepo        *repositories.LinkRepository
	access          *AccessService
}

// NewExportService creates a new export service instance
func NewExportService() *ExportService {
	return &ExportService{
		userRepo:        repositories.NewUserRepository(),
		requirementRepo: repositories.NewRequirementRepository(),
		linkRepo:        repositories.NewLinkRepository(),
		access:          NewAccessService(),
	}
}

// GeometryBlock is the best-effort block shape extracted from the canvas
// geometry document for the XMI export
type GeometryBlock struct {
	ID          string
	Name        string
	Description string
	X           float64
	Y           float64
}

type geometryCell struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Attrs       struct {
		Label struct {
			Text string `json:"text"`
		} `json:"label"`
	} `json:"attrs"`
	Position struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"position"`
}

type geometryDocument struct {
	Cells []geometryCell `json:"cells"`
}

// ExtractGeometryBlocks pulls block tuples out of the opaque geometry
// document. This is the only place the backend looks inside the document,
// and it is allowed to fail: callers treat an error as "no blocks".
func ExtractGeometryBlocks(data datatypes.JSON) ([]GeometryBlock, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var doc geometryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("geometry document is not parseable: %w", err)
	}

	var blocks []GeometryBlock
	for _, cell := range doc.Cells {
		if !strings.Contains(cell.Type, "Rectangle") {
			continue
		}
		name := cell.Attrs.Label.Text
		if name == "" {
			name = "Unnamed Block"
		}
		blocks = append(blocks, GeometryBlock{
			ID:          cell.ID,
			Name:        name,
			Description: cell.Description,
			X:           cell.Position.X,
			Y:           cell.Position.Y,
		})
	}
	return blocks, nil
}

// loadExportData fetches the model, owner, requirements and links behind an
// export. All model-scoped requirements go into the document regardless of
// owner; links carry their requirement embedded so imports can remap ids.
func (s *ExportService) loadExportData(modelID, userID string) (models.Model, []models.Requirement, []models.Link, error) {
	model, err := s.access.RequireAccess(modelID, userID, models.PermissionView)
	if err != nil {
		return models.Model{}, nil, nil, err
	}

	owner, err := s.userRepo.FindByID(model.UserID)
	if err != nil {
		return models.Model{}, nil, nil, err
	}
	model.User = owner

	requirements, err := s.requirementRepo.FindByModelID(modelID)
	if err != nil {
		return models.Model{}, nil, nil, err
	}

	links, err := s.linkRepo.FindByModelID(modelID)
	if err != nil {
		return models.Model{}, nil, nil, err
	}

	return model, requirements, links, nil
}

func toExportRequirement(requirement models.Requirement) dto.ExportRequirement {
	return dto.ExportRequirement{
		ID:          requirement.ID,
		Title:       requirement.Title,
		Description: requirement.Description,
		Priority:    requirement.Priority,
		Status:      requirement.Status,
		CreatedAt:   requirement.CreatedAt,
	}
}

// ExportJSON builds the JSON export document for a model. The returned
// filename is derived from the model name.
func (s *ExportService) ExportJSON(modelID, userID, userEmail string) (dto.ExportDocument, string, error) {
	model, requirements, links, err := s.loadExportData(modelID, userID)
	if err != nil {
		return dto.ExportDocument{}, "", err
	}

	author := model.User.Email
	if model.User.Name != nil && *model.User.Name != "" {
		author = *model.User.Name
	}

	doc := dto.ExportDocument{
		Metadata: dto.ExportMetadata{
			ExportVersion:    "1.0",
			ExportID:         uuid.NewString(),
			ExportedAt:       time.Now().UTC(),
			ExportedBy:       userEmail,
			ModelID:          model.ID,
			ModelName:        model.Name,
			ModelDescription: model.Description,
			OriginalAuthor:   author,
			CreatedAt:        model.CreatedAt,
			UpdatedAt:        model.UpdatedAt,
		},
		Diagram: dto.ExportDiagram{
			Name:        model.Name,
			Description: model.Description,
			DiagramData: json.RawMessage(model.DiagramData),
		},
		Requirements: make([]dto.ExportRequirement, 0, len(requirements)),
		Links:        make([]dto.ExportLink, 0, len(links)),
	}

	for _, requirement := range requirements {
		doc.Requirements = append(doc.Requirements, toExportRequirement(requirement))
	}
	for _, link := range links {
		doc.Links = append(doc.Links, dto.ExportLink{
			ID:          link.ID,
			BlockID:     link.BlockID,
			ModelID:     link.ModelID,
			Requirement: toExportRequirement(link.Requirement),
			CreatedAt:   link.CreatedAt,
		})
	}

	return doc, utils.ExportFileName(model.Name, "json"), nil
}

// ExportXMI builds a SysML-flavored XMI document for a model: one uml:Class
// per geometry block and requirement, one uml:Dependency per link. Field
// mapping is structural only.
func (s *ExportService) ExportXMI(modelID, userID string) (string, string, error) {
	model, requirements, links, err := s.loadExportData(modelID, userID)
	if err != nil {
		return "", "", err
	}

	// Best effort: an unparseable geometry document just means no blocks
	blocks, _ := ExtractGeometryBlocks(model.DiagramData)

	author := model.User.Email
	if model.User.Name != nil && *model.User.Name != "" {
		author = *model.User.Name
	}

	return generateXMI(model, blocks, requirements, links, author), utils.ExportFileName(model.Name, "xmi"), nil
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}

func generateXMI(model models.Model, blocks []GeometryBlock, requirements []models.Requirement, links []models.Link, author string) string {
	var b strings.Builder
	name := xmlEscape(model.Name)

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<xmi:XMI xmi:version="2.0" xmlns:xmi="http://www.omg.org/XMI" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:sysml="http://www.eclipse.org/papyrus/sysml/1.6/SysML" xmlns:uml="http://www.eclipse.org/uml2/5.0.0/UML">` + "\n")
	fmt.Fprintf(&b, "  <uml:Model xmi:id=%q name=%q>\n", model.ID, name)
	fmt.Fprintf(&b, "    <packagedElement xmi:type=\"uml:Package\" xmi:id=\"%s_pkg\" name=\"%s_Package\">\n", model.ID, name)

	for _, block := range blocks {
		fmt.Fprintf(&b, "      <packagedElement xmi:type=\"uml:Class\" xmi:id=%q name=%q>\n", block.ID, xmlEscape(block.Name))
		fmt.Fprintf(&b, "        <ownedComment xmi:id=\"%s_comment\" body=%q/>\n", block.ID, xmlEscape(block.Description))
		fmt.Fprintf(&b, "        <appliedStereotype xmi:type=\"sysml:blocks:Block\" xmi:id=\"%s_block\"/>\n", block.ID)
		b.WriteString("      </packagedElement>\n")
	}

	for _, requirement := range requirements {
		fmt.Fprintf(&b, "      <packagedElement xmi:type=\"uml:Class\" xmi:id=%q name=%q>\n", requirement.ID, xmlEscape(requirement.Title))
		fmt.Fprintf(&b, "        <ownedComment xmi:id=\"%s_comment\" body=%q/>\n", requirement.ID, xmlEscape(requirement.Description))
		fmt.Fprintf(&b, "        <appliedStereotype xmi:type=\"sysml:requirements:Requirement\" xmi:id=\"%s_req\">\n", requirement.ID)
		fmt.Fprintf(&b, "          <text>%s</text>\n", xmlEscape(requirement.Description))
		fmt.Fprintf(&b, "          <id>%s</id>\n", requirement.ID)
		b.WriteString("        </appliedStereotype>\n")
		fmt.Fprintf(&b, "        <ownedLiteral xmi:type=\"uml:EnumerationLiteral\" xmi:id=\"%s_priority\" name=\"priority\" literal=%q/>\n", requirement.ID, requirement.Priority)
		fmt.Fprintf(&b, "        <ownedLiteral xmi:type=\"uml:EnumerationLiteral\" xmi:id=\"%s_status\" name=\"status\" literal=%q/>\n", requirement.ID, requirement.Status)
		b.WriteString("      </packagedElement>\n")
	}

	for i, link := range links {
		fmt.Fprintf(&b, "      <packagedElement xmi:type=\"uml:Dependency\" xmi:id=%q name=\"trace_%d\">\n", link.ID, i)
		fmt.Fprintf(&b, "        <client xmi:idref=%q/>\n", link.BlockID)
		fmt.Fprintf(&b, "        <supplier xmi:idref=%q/>\n", link.RequirementID)
		fmt.Fprintf(&b, "        <appliedStereotype xmi:type=\"sysml:requirements:Trace\" xmi:id=\"%s_trace\"/>\n", link.ID)
		b.WriteString("      </packagedElement>\n")
	}

	b.WriteString("    </packagedElement>\n")
	b.WriteString("  </uml:Model>\n")
	fmt.Fprintf(&b, "  <sysml:blocks:BlockDefinition xmi:id=\"%s_blockdef\" name=\"%s_Definition\">\n", model.ID, name)
	fmt.Fprintf(&b, "    <documentation>Exported on %s</documentation>\n", time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "    <author>%s</author>\n", xmlEscape(author))
	b.WriteString("    <version>1.0</version>\n")
	b.WriteString("  </sysml:blocks:BlockDefinition>\n")
	b.WriteString("</xmi:XMI>\n")

	return b.String()
}
