package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/folio/pkg/domain"
)

// Type defines the contract for field validation.
// Implementations determine how raw input is parsed and how typed values are checked.
type Type interface {
	// Name returns the input kind handled by the type.
	Name() domain.InputKind
	// Parse converts raw form input into a typed value.
	Parse(raw string) (domain.FieldValue, error)
	// Validate checks if a value conforms to this type.
	Validate(value domain.FieldValue) error
}

// --- Built-in Type Implementations ---

// TextType accepts any text. It is used for text and textarea inputs.
type TextType struct {
	kind domain.InputKind
}

func (t *TextType) Name() domain.InputKind { return t.kind }

func (t *TextType) Parse(raw string) (domain.FieldValue, error) {
	return domain.Text(raw), nil
}

func (t *TextType) Validate(value domain.FieldValue) error {
	switch value.Kind() {
	case domain.ValueText, domain.ValueDate:
		return nil
	}
	return fmt.Errorf("expected text, got %s", value.Kind())
}

// NumberType accepts decimal numbers.
type NumberType struct{}

func (t *NumberType) Name() domain.InputKind { return domain.InputNumber }

func (t *NumberType) Parse(raw string) (domain.FieldValue, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return domain.FieldValue{}, fmt.Errorf("expected a number")
	}
	return domain.Number(n), nil
}

func (t *NumberType) Validate(value domain.FieldValue) error {
	if value.Kind() == domain.ValueNumber {
		return nil
	}
	// Loaded snapshots may carry numbers typed as text.
	if value.Kind() == domain.ValueText {
		if _, err := t.Parse(value.String()); err == nil {
			return nil
		}
	}
	return fmt.Errorf("expected a number")
}

// DateType accepts YYYY-MM-DD dates.
type DateType struct{}

func (t *DateType) Name() domain.InputKind { return domain.InputDate }

func (t *DateType) Parse(raw string) (domain.FieldValue, error) {
	v, err := domain.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return domain.FieldValue{}, fmt.Errorf("expected a date formatted %s", domain.DateLayout)
	}
	return v, nil
}

func (t *DateType) Validate(value domain.FieldValue) error {
	if value.Kind() == domain.ValueDate {
		return nil
	}
	// Stored dates decode as text.
	if value.Kind() == domain.ValueText {
		if _, err := t.Parse(value.String()); err == nil {
			return nil
		}
	}
	return fmt.Errorf("expected a date formatted %s", domain.DateLayout)
}

var builtins = map[domain.InputKind]Type{
	domain.InputText:     &TextType{kind: domain.InputText},
	domain.InputTextarea: &TextType{kind: domain.InputTextarea},
	domain.InputNumber:   &NumberType{},
	domain.InputDate:     &DateType{},
}

// For returns the Type for an input kind. Unknown kinds fall back to text.
func For(kind domain.InputKind) Type {
	if t, ok := builtins[kind]; ok {
		return t
	}
	return builtins[domain.InputText]
}
