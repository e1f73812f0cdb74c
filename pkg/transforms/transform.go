package transforms

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrInvalidField = errors.New("invalid transform field")

type Mode int

const (
	// Replace copies every source field that is set.
	Replace Mode = iota
	// FillEmpty copies a set source field only into an unset destination field.
	FillEmpty
)

type FieldMapping struct {
	Source      string
	Destination string
}

// Field maps a field onto the field of the same name.
func Field(name string) FieldMapping {
	return FieldMapping{Source: name, Destination: name}
}

func Fields(names ...string) []FieldMapping {
	mappings := make([]FieldMapping, 0, len(names))
	for _, name := range names {
		mappings = append(mappings, Field(name))
	}
	return mappings
}

// TransformDefinition overlays a list of struct fields from one value onto
// another. Pointer fields count as set when non-nil, all others when they
// differ from their zero value.
type TransformDefinition struct {
	Mode   Mode
	Fields []FieldMapping
}

// Transform applies the definition. Both source and destination must be
// pointers to structs. It returns the names of the destination fields that
// were written.
func (t *TransformDefinition) Transform(source interface{}, destination interface{}) ([]string, error) {
	sourceValue, err := structValue(source)
	if err != nil {
		return nil, err
	}
	destinationValue, err := structValue(destination)
	if err != nil {
		return nil, err
	}

	var changed []string
	for _, mapping := range t.Fields {
		sourceField := sourceValue.FieldByName(mapping.Source)
		if !sourceField.IsValid() {
			return changed, fmt.Errorf("%w: %s has no field %s", ErrInvalidField, sourceValue.Type(), mapping.Source)
		}
		destinationField := destinationValue.FieldByName(mapping.Destination)
		if !destinationField.IsValid() || !destinationField.CanSet() {
			return changed, fmt.Errorf("%w: %s has no settable field %s", ErrInvalidField, destinationValue.Type(), mapping.Destination)
		}
		if sourceField.Type() != destinationField.Type() {
			return changed, fmt.Errorf("%w: %s.%s is %s but %s.%s is %s", ErrInvalidField,
				sourceValue.Type(), mapping.Source, sourceField.Type(),
				destinationValue.Type(), mapping.Destination, destinationField.Type())
		}

		if !isSet(sourceField) {
			continue
		}
		if t.Mode == FillEmpty && isSet(destinationField) {
			continue
		}

		destinationField.Set(copyValue(sourceField))
		changed = append(changed, mapping.Destination)
	}

	return changed, nil
}

func structValue(input interface{}) (reflect.Value, error) {
	value := reflect.ValueOf(input)
	if value.Kind() != reflect.Pointer || value.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: expected a non-nil pointer, got %T", ErrInvalidField, input)
	}
	value = value.Elem()
	if value.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: expected a struct, got %T", ErrInvalidField, input)
	}
	return value, nil
}

func isSet(field reflect.Value) bool {
	if field.Kind() == reflect.Pointer {
		return !field.IsNil()
	}
	return !field.IsZero()
}

// copyValue detaches pointer fields so source and destination never share
// the pointee.
func copyValue(field reflect.Value) reflect.Value {
	if field.Kind() != reflect.Pointer {
		return field
	}
	copied := reflect.New(field.Type().Elem())
	copied.Elem().Set(field.Elem())
	return copied
}
