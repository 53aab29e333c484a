package schema

import (
	"github.com/aretw0/folio/pkg/domain"
)

// Parse converts raw input for the given field into a typed value.
// Empty input is accepted as empty text; Validate reports it when the field is required.
func Parse(def domain.FieldDefinition, raw string) (domain.FieldValue, error) {
	if raw == "" {
		return domain.Text(""), nil
	}
	v, err := For(def.InputKind).Parse(raw)
	if err != nil {
		return domain.FieldValue{}, &ValidationError{
			Key:    def.ID,
			Label:  def.Label,
			Reason: err.Error(),
			Value:  raw,
		}
	}
	return v, nil
}

// Validate checks data against the definitions.
// Returns an error with all validation failures found.
// Keys in data without a definition are ignored.
func Validate(defs []domain.FieldDefinition, data domain.FieldData) error {
	if len(defs) == 0 {
		// No definitions = no validation
		return nil
	}

	var errs []error

	for _, def := range defs {
		value, exists := data.Get(def.ID)
		if !exists || value.IsEmpty() {
			if def.Required {
				errs = append(errs, &ValidationError{
					Key:    def.ID,
					Label:  def.Label,
					Reason: "required",
				})
			}
			continue
		}

		if err := For(def.InputKind).Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    def.ID,
				Label:  def.Label,
				Reason: err.Error(),
				Value:  value.Interface(),
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}

	return nil
}
