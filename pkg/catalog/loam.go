package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/folio/pkg/domain"
	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/mitchellh/mapstructure"
)

// Entry kinds recognised in document front matter.
const (
	EntryLOB      = "lob"
	EntryTemplate = "template"
	EntrySection  = "section"
)

// EntryMetadata is the front matter of one catalog document.
// Section documents use their body as the section content.
type EntryMetadata struct {
	Kind              string           `json:"kind"`
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Title             string           `json:"title"`
	Order             int              `json:"order"`
	LOBID             string           `json:"lobId"`
	ComponentKey      string           `json:"componentKey"`
	StyleClass        string           `json:"styleClass"`
	HasSpecificFields bool             `json:"hasSpecificFields"`
	UsesRichEditor    bool             `json:"usesRichEditor"`
	Fields            []map[string]any `json:"fields"`
}

// LoadDir loads a catalog from a directory of Markdown/YAML documents through Loam.
// The directory is opened read-only.
func LoadDir(ctx context.Context, dir string, opts ...Option) (*Catalog, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps numeric front matter as json.Number across adapters.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return LoadRepository(ctx, repo, opts...)
}

// LoadRepository builds a catalog from an already opened Loam repository.
func LoadRepository(ctx context.Context, repo core.Repository, opts ...Option) (*Catalog, error) {
	docs, err := loam.NewTypedRepository[EntryMetadata](repo).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	type entry struct {
		meta    EntryMetadata
		id      string
		content string
	}
	entries := make([]entry, 0, len(docs))
	for _, doc := range docs {
		id := doc.Data.ID
		if id == "" {
			id = trimExtension(doc.ID)
		}
		entries = append(entries, entry{meta: doc.Data, id: id, content: doc.Content})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].meta.Order != entries[j].meta.Order {
			return entries[i].meta.Order < entries[j].meta.Order
		}
		return entries[i].id < entries[j].id
	})

	data := Data{Fields: make(map[string][]domain.FieldDefinition)}
	for _, e := range entries {
		switch e.meta.Kind {
		case EntryLOB:
			data.LOBs = append(data.LOBs, domain.LineOfBusiness{ID: e.id, Name: e.meta.Name})
		case EntryTemplate:
			data.Templates = append(data.Templates, domain.Template{
				ID:                e.id,
				LOBID:             e.meta.LOBID,
				Name:              e.meta.Name,
				Kind:              domain.TemplateKind(e.meta.ComponentKey),
				StyleClass:        e.meta.StyleClass,
				HasSpecificFields: e.meta.HasSpecificFields,
				UsesRichEditor:    e.meta.UsesRichEditor,
			})
			if len(e.meta.Fields) > 0 {
				defs, err := decodeFields(e.meta.Fields)
				if err != nil {
					return nil, fmt.Errorf("template %s: %w", e.id, err)
				}
				data.Fields[e.id] = defs
			}
		case EntrySection:
			title := e.meta.Title
			if title == "" {
				title = e.meta.Name
			}
			data.Sections = append(data.Sections, domain.CommonSection{
				ID:      e.id,
				Title:   title,
				Content: strings.TrimSpace(e.content),
			})
		default:
			// Unrelated documents (READMEs, notes) may live alongside the catalog.
			continue
		}
	}

	return New(data, opts...)
}

func decodeFields(raw []map[string]any) ([]domain.FieldDefinition, error) {
	var defs []domain.FieldDefinition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &defs,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode fields: %w", err)
	}
	return defs, nil
}

func trimExtension(id string) string {
	base := filepath.Base(id)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
