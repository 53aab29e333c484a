package document

import (
	"errors"
	"fmt"

	"github.com/aretw0/folio/pkg/catalog"
	"github.com/aretw0/folio/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Edit operation names used on the wire.
const (
	OpSelectLOB      = "selectLOB"
	OpSelectTemplate = "selectTemplate"
	OpUpdateCommon   = "updateCommon"
	OpUpdateField    = "updateField"
	OpSetSearch      = "setSearch"
	OpSetBody        = "setBody"
	OpInsert         = "insert"
	OpInsertSection  = "insertSection"
)

// ErrInvalidEdit is returned when an edit request cannot be resolved.
var ErrInvalidEdit = errors.New("invalid edit")

// EditRequest is the transport form of an Edit. Catalog entities are
// referenced by id and resolved against a Catalog.
type EditRequest struct {
	Op            string  `json:"op" mapstructure:"op"`
	LOBID         string  `json:"lobId,omitempty" mapstructure:"lobId"`
	TemplateID    string  `json:"templateId,omitempty" mapstructure:"templateId"`
	Subject       *string `json:"subject,omitempty" mapstructure:"subject"`
	RecipientName *string `json:"recipientName,omitempty" mapstructure:"recipientName"`
	FieldID       string  `json:"fieldId,omitempty" mapstructure:"fieldId"`
	Value         any     `json:"value,omitempty" mapstructure:"value"`
	Term          string  `json:"term,omitempty" mapstructure:"term"`
	Markup        string  `json:"markup,omitempty" mapstructure:"markup"`
	Content       string  `json:"content,omitempty" mapstructure:"content"`
	SectionID     string  `json:"sectionId,omitempty" mapstructure:"sectionId"`
}

// DecodeRequests decodes loosely typed edit payloads (e.g. from JSON or MCP arguments).
func DecodeRequests(raw []map[string]any) ([]EditRequest, error) {
	var reqs []EditRequest
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &reqs,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEdit, err)
	}
	return reqs, nil
}

// Resolve converts the request into an Edit. An empty lobId or templateId deselects.
func (r EditRequest) Resolve(c *catalog.Catalog) (Edit, error) {
	switch r.Op {
	case OpSelectLOB:
		if r.LOBID == "" {
			return SelectLOB{}, nil
		}
		lob, err := c.LOB(r.LOBID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidEdit, err)
		}
		return SelectLOB{LOB: &lob}, nil
	case OpSelectTemplate:
		if r.TemplateID == "" {
			return SelectTemplate{}, nil
		}
		t, err := c.Template(r.TemplateID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidEdit, err)
		}
		return SelectTemplate{Template: &t}, nil
	case OpUpdateCommon:
		return UpdateCommon{Patch: domain.CommonFieldsPatch{
			Subject:       r.Subject,
			RecipientName: r.RecipientName,
		}}, nil
	case OpUpdateField:
		if r.FieldID == "" {
			return nil, fmt.Errorf("%w: updateField requires fieldId", ErrInvalidEdit)
		}
		v, err := domain.ValueOf(r.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidEdit, err)
		}
		return UpdateField{ID: r.FieldID, Value: v}, nil
	case OpSetSearch:
		return SetSearch{Term: r.Term}, nil
	case OpSetBody:
		return SetBody{Markup: r.Markup}, nil
	case OpInsert:
		return Insert{Content: r.Content}, nil
	case OpInsertSection:
		s, ok := c.Section(r.SectionID)
		if !ok {
			return nil, fmt.Errorf("%w: unknown section %q", ErrInvalidEdit, r.SectionID)
		}
		return InsertSection{Section: s}, nil
	default:
		return nil, fmt.Errorf("%w: unknown op %q", ErrInvalidEdit, r.Op)
	}
}

// ResolveAll resolves every request. Nothing is returned if any request is invalid.
func ResolveAll(c *catalog.Catalog, reqs []EditRequest) ([]Edit, error) {
	edits := make([]Edit, 0, len(reqs))
	for i, r := range reqs {
		e, err := r.Resolve(c)
		if err != nil {
			return nil, fmt.Errorf("edit %d: %w", i, err)
		}
		edits = append(edits, e)
	}
	return edits, nil
}
