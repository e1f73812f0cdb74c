package transforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name   string
	Speed  *float64
	Prio   *int
	Nested *int
	count  int
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}

func TestTransformReplace(t *testing.T) {
	source := &record{Name: "template", Speed: floatPtr(120)}
	destination := &record{Name: "target", Speed: floatPtr(80), Prio: intPtr(3)}

	transform := TransformDefinition{Mode: Replace, Fields: Fields("Name", "Speed", "Prio")}
	changed, err := transform.Transform(source, destination)

	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Speed"}, changed)
	assert.Equal(t, "template", destination.Name)
	assert.Equal(t, 120.0, *destination.Speed)
	assert.Equal(t, 3, *destination.Prio)

	*source.Speed = 10
	assert.Equal(t, 120.0, *destination.Speed)
}

func TestTransformFillEmpty(t *testing.T) {
	source := &record{Speed: floatPtr(120), Prio: intPtr(1)}
	destination := &record{Speed: floatPtr(80)}

	transform := TransformDefinition{Mode: FillEmpty, Fields: Fields("Speed", "Prio")}
	changed, err := transform.Transform(source, destination)

	require.NoError(t, err)
	assert.Equal(t, []string{"Prio"}, changed)
	assert.Equal(t, 80.0, *destination.Speed)
	assert.Equal(t, 1, *destination.Prio)
}

func TestTransformRenamedField(t *testing.T) {
	source := &record{Prio: intPtr(7)}
	destination := &record{}

	transform := TransformDefinition{Fields: []FieldMapping{{Source: "Prio", Destination: "Nested"}}}
	_, err := transform.Transform(source, destination)

	require.NoError(t, err)
	assert.Equal(t, 7, *destination.Nested)
	assert.Nil(t, destination.Prio)
}

func TestTransformInvalid(t *testing.T) {
	tests := []struct {
		name        string
		fields      []FieldMapping
		source      interface{}
		destination interface{}
	}{
		{"unknown field", Fields("Missing"), &record{}, &record{}},
		{"type mismatch", []FieldMapping{{Source: "Name", Destination: "Speed"}}, &record{}, &record{}},
		{"unexported", Fields("count"), &record{}, &record{}},
		{"not a pointer", Fields("Name"), record{}, &record{}},
		{"nil pointer", Fields("Name"), &record{}, (*record)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transform := TransformDefinition{Fields: tt.fields}
			_, err := transform.Transform(tt.source, tt.destination)
			assert.ErrorIs(t, err, ErrInvalidField)
		})
	}
}
