package catalog

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/folio/internal/logging"
	"github.com/aretw0/folio/pkg/domain"
	"github.com/aretw0/folio/pkg/schema"
)

// ErrInvalidCatalog is returned when the configuration violates a referential or uniqueness rule.
var ErrInvalidCatalog = errors.New("catalog: invalid configuration")

// Data is the raw configuration a Catalog is built from.
// Field definitions are a side table keyed by template id.
type Data struct {
	LOBs      []domain.LineOfBusiness             `json:"lobs" yaml:"lobs"`
	Templates []domain.Template                   `json:"templates" yaml:"templates"`
	Fields    map[string][]domain.FieldDefinition `json:"fields" yaml:"fields"`
	Sections  []domain.CommonSection              `json:"sections" yaml:"sections"`
}

// Catalog is an immutable, validated registry.
// Safe for concurrent use.
type Catalog struct {
	lobs          []domain.LineOfBusiness
	lobIndex      map[string]int
	templates     []domain.Template
	templateIndex map[string]int
	fields        map[string][]domain.FieldDefinition
	sections      []domain.CommonSection
	warnings      []*domain.ConfigurationWarning
	logger        *slog.Logger
}

// Option configures the Catalog.
type Option func(*Catalog)

// WithLogger configures a logger for configuration warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// New validates data and builds a Catalog. Load order is preserved.
func New(data Data, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		lobIndex:      make(map[string]int, len(data.LOBs)),
		templateIndex: make(map[string]int, len(data.Templates)),
		fields:        make(map[string][]domain.FieldDefinition, len(data.Fields)),
		logger:        logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	var errs []error
	invalid := func(key, reason string, value any) {
		errs = append(errs, &schema.ValidationError{Key: key, Reason: reason, Value: value})
	}

	for _, lob := range data.LOBs {
		key := fmt.Sprintf("lobs[%s]", lob.ID)
		if lob.ID == "" {
			invalid(key, "missing id", nil)
			continue
		}
		if _, dup := c.lobIndex[lob.ID]; dup {
			invalid(key, "duplicate id", nil)
			continue
		}
		c.lobIndex[lob.ID] = len(c.lobs)
		c.lobs = append(c.lobs, lob)
	}

	for _, tmpl := range data.Templates {
		key := fmt.Sprintf("templates[%s]", tmpl.ID)
		switch {
		case tmpl.ID == "":
			invalid(key, "missing id", nil)
			continue
		case !tmpl.Kind.Valid():
			invalid(key+".componentKey", "unknown template kind", string(tmpl.Kind))
			continue
		}
		if _, ok := c.lobIndex[tmpl.LOBID]; !ok {
			invalid(key+".lobId", "references unknown line of business", tmpl.LOBID)
			continue
		}
		if _, dup := c.templateIndex[tmpl.ID]; dup {
			invalid(key, "duplicate id", nil)
			continue
		}
		c.templateIndex[tmpl.ID] = len(c.templates)
		c.templates = append(c.templates, tmpl)
	}

	for templateID, defs := range data.Fields {
		key := fmt.Sprintf("fields[%s]", templateID)
		if _, ok := c.templateIndex[templateID]; !ok {
			invalid(key, "references unknown template", templateID)
			continue
		}
		seen := make(map[string]bool, len(defs))
		for _, def := range defs {
			switch {
			case def.ID == "":
				invalid(key, "field missing id", nil)
			case seen[def.ID]:
				invalid(key+"."+def.ID, "duplicate field id", nil)
			case !def.InputKind.Valid():
				invalid(key+"."+def.ID, "unknown input kind", string(def.InputKind))
			}
			seen[def.ID] = true
		}
		c.fields[templateID] = append([]domain.FieldDefinition(nil), defs...)
	}

	seenSections := make(map[string]bool, len(data.Sections))
	for _, s := range data.Sections {
		if s.ID == "" || seenSections[s.ID] {
			invalid(fmt.Sprintf("sections[%s]", s.ID), "missing or duplicate id", nil)
			continue
		}
		seenSections[s.ID] = true
		c.sections = append(c.sections, s)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, &schema.AggregateError{Errors: errs})
	}

	for _, tmpl := range c.templates {
		if tmpl.HasSpecificFields && len(c.fields[tmpl.ID]) == 0 {
			w := missingFields(tmpl.ID)
			c.warnings = append(c.warnings, w)
			c.logger.Warn("Template declares specific fields but none are defined", "template_id", tmpl.ID)
		}
	}

	return c, nil
}

func missingFields(templateID string) *domain.ConfigurationWarning {
	return &domain.ConfigurationWarning{
		TemplateID: templateID,
		Reason:     "hasSpecificFields is set but no field definitions are registered",
	}
}

// ListLOBs returns the lines of business in load order.
func (c *Catalog) ListLOBs() []domain.LineOfBusiness {
	out := make([]domain.LineOfBusiness, len(c.lobs))
	copy(out, c.lobs)
	return out
}

// LOB looks up a line of business by id.
func (c *Catalog) LOB(id string) (domain.LineOfBusiness, error) {
	i, ok := c.lobIndex[id]
	if !ok {
		return domain.LineOfBusiness{}, fmt.Errorf("%w: %s", domain.ErrLOBNotFound, id)
	}
	return c.lobs[i], nil
}

// Template looks up a template by id.
func (c *Catalog) Template(id string) (domain.Template, error) {
	i, ok := c.templateIndex[id]
	if !ok {
		return domain.Template{}, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, id)
	}
	return c.templates[i], nil
}

// ListTemplatesForLOB returns the templates of a line of business whose name
// contains searchTerm (case-insensitive), in load order.
//
// It returns nil when lobID is empty (no LOB selected) and a non-nil empty
// slice when the LOB has no matching template.
func (c *Catalog) ListTemplatesForLOB(lobID, searchTerm string) []domain.Template {
	if lobID == "" {
		return nil
	}
	out := []domain.Template{}
	for _, t := range c.templates {
		if t.LOBID == lobID && t.MatchesSearch(searchTerm) {
			out = append(out, t)
		}
	}
	return out
}

// FieldDefinitionsFor returns the ordered field definitions of a template.
// A template flagged with specific fields but lacking definitions yields an
// empty result and a logged configuration warning.
func (c *Catalog) FieldDefinitionsFor(templateID string) []domain.FieldDefinition {
	defs := c.fields[templateID]
	if len(defs) == 0 {
		if i, ok := c.templateIndex[templateID]; ok && c.templates[i].HasSpecificFields {
			c.logger.Warn("Template declares specific fields but none are defined",
				"template_id", templateID,
				"err", missingFields(templateID),
			)
		}
		return []domain.FieldDefinition{}
	}
	out := make([]domain.FieldDefinition, len(defs))
	copy(out, defs)
	return out
}

// Sections returns the reusable sections in load order.
func (c *Catalog) Sections() []domain.CommonSection {
	out := make([]domain.CommonSection, len(c.sections))
	copy(out, c.sections)
	return out
}

// Section looks up a reusable section by id.
func (c *Catalog) Section(id string) (domain.CommonSection, bool) {
	for _, s := range c.sections {
		if s.ID == id {
			return s, true
		}
	}
	return domain.CommonSection{}, false
}

// Warnings returns the configuration warnings found at construction.
func (c *Catalog) Warnings() []*domain.ConfigurationWarning {
	out := make([]*domain.ConfigurationWarning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Data returns a copy of the validated configuration.
func (c *Catalog) Data() Data {
	fields := make(map[string][]domain.FieldDefinition, len(c.fields))
	for id, defs := range c.fields {
		fields[id] = append([]domain.FieldDefinition(nil), defs...)
	}
	return Data{
		LOBs:      c.ListLOBs(),
		Templates: append([]domain.Template(nil), c.templates...),
		Fields:    fields,
		Sections:  c.Sections(),
	}
}
