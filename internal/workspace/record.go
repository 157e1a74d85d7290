package workspace

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Seed record field values.
const (
	SeedOutline = "0"
	SeedHier    = 0
	StatusNew   = "NEW"

	// placeholderID is the reqt_ID value of the item template. A generated
	// ID must never equal it.
	placeholderID = "reqt_ID"
)

// ConfigRecord is the content of config.reqt.json. Paths are relative to
// the project root.
type ConfigRecord struct {
	ProjectTitle string `json:"projectTitle" validate:"required"`
	SotPath      string `json:"sotPath" validate:"required"`
	TemplatePath string `json:"templatePath" validate:"required"`
}

// Item is one requirement entry. Field order is the on-disk key order.
type Item struct {
	ReqtID      string `json:"reqt_ID" validate:"required"`
	Hier        int    `json:"hier" validate:"gte=0"`
	Outline     string `json:"outline" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Details     string `json:"details"`
	Requirement string `json:"requirement"`
	Acceptance  string `json:"acceptance"`
	Readme      string `json:"readme"`
	Status      string `json:"status" validate:"required"`
	ReadmeAI    string `json:"readme_ai"`
	TestExists  bool   `json:"test_exists"`
	TestPassed  bool   `json:"test_passed"`
}

var validate = validator.New()

// NewConfigRecord builds the config record for a project.
func NewConfigRecord(projectTitle, safeTitle string) ConfigRecord {
	return ConfigRecord{
		ProjectTitle: projectTitle,
		SotPath:      relPath(SOTFileName(safeTitle)),
		TemplatePath: relPath(TemplateFileName),
	}
}

// ItemTemplate returns the placeholder record written to
// itemTemplate.reqt.json. It is identical for every project.
func ItemTemplate() Item {
	return Item{
		ReqtID:      placeholderID,
		Hier:        0,
		Outline:     "outline",
		Title:       "title",
		Details:     "details",
		Requirement: "requirement",
		Acceptance:  "acceptance",
		Readme:      "readme",
		Status:      "status",
		ReadmeAI:    "readme_ai",
	}
}

// SeedItem returns the project's own top-level entry.
func SeedItem(id, safeTitle string) Item {
	return Item{
		ReqtID:  id,
		Hier:    SeedHier,
		Outline: SeedOutline,
		Title:   safeTitle,
		Status:  StatusNew,
	}
}

// ValidateID reports whether id may stamp a record.
func ValidateID(id string) error {
	if err := validate.Var(id, "required,ne="+placeholderID); err != nil {
		return fmt.Errorf("unusable record id %q: %w", id, err)
	}
	return nil
}

// marshalRecord validates v and encodes it as 2-space indented JSON without
// HTML escaping or a trailing newline.
func marshalRecord(v any) ([]byte, error) {
	switch r := v.(type) {
	case []Item:
		for i := range r {
			if err := validate.Struct(r[i]); err != nil {
				return nil, fmt.Errorf("validating record %d: %w", i, err)
			}
		}
	default:
		if err := validate.Struct(v); err != nil {
			return nil, fmt.Errorf("validating record: %w", err)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
