// Package recognition validates label-recognition suggestions before
// they are offered as bottle pre-fills. The upstream vision provider is
// untrusted input; everything is re-checked here.
package recognition

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alcotheque/cellar/internal/model"
)

// Suggestion is a proposed bottle pre-fill extracted from a label photo.
type Suggestion struct {
	Name           string
	Type           model.SpiritType
	Year           *int32
	EstimatedValue *decimal.Decimal
}

// FieldError reports which suggestion field failed validation.
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid suggestion field %q: %q", e.Field, e.Value)
}

func (e *FieldError) Unwrap() error {
	return model.ErrInvalidArgument
}

const minYear = 1900

// Validate checks a raw suggestion without returning the cleaned copy.
func Validate(raw Suggestion, now time.Time) error {
	_, err := Normalize(raw, now)
	return err
}

// Normalize cleans a raw suggestion and validates it against the bottle
// domain rules. It returns a copy safe to hand to bottle creation.
func Normalize(raw Suggestion, now time.Time) (Suggestion, error) {
	out := Suggestion{
		Name: strings.TrimSpace(raw.Name),
		Type: model.SpiritType(strings.ToLower(strings.TrimSpace(string(raw.Type)))),
	}

	if out.Name == "" {
		return Suggestion{}, errors.Join(&FieldError{Field: "name"}, errors.New("name is required"))
	}
	if out.Type == "" {
		return Suggestion{}, errors.Join(&FieldError{Field: "type"}, errors.New("type is required"))
	}
	if !out.Type.Valid() {
		return Suggestion{}, &FieldError{Field: "type", Value: string(out.Type)}
	}

	if raw.Year != nil {
		y := *raw.Year
		if y < minYear || y > int32(now.Year()) {
			return Suggestion{}, &FieldError{Field: "year", Value: fmt.Sprintf("%d", y)}
		}
		out.Year = &y
	}

	if raw.EstimatedValue != nil {
		if raw.EstimatedValue.Sign() <= 0 {
			return Suggestion{}, &FieldError{Field: "estimated_value", Value: raw.EstimatedValue.String()}
		}
		// Vision estimates are rough, whole units are enough.
		rounded := raw.EstimatedValue.Round(0)
		out.EstimatedValue = &rounded
	}

	return out, nil
}
