package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLongestCommonRun(t *testing.T) {
	tests := []struct {
		name   string
		a      []string
		b      []string
		startA int
		startB int
		length int
	}{
		{"no common element", []string{"A", "B"}, []string{"C", "D"}, 0, 0, 0},
		{"empty input", nil, []string{"A"}, 0, 0, 0},
		{"identical", []string{"A", "B", "C"}, []string{"A", "B", "C"}, 0, 0, 3},
		{"middle window", []string{"A", "B", "C", "D", "E", "F"}, []string{"B", "C", "D", "E"}, 1, 0, 4},
		{"schedule longer than route", []string{"C", "D"}, []string{"A", "B", "C", "D", "E"}, 0, 2, 2},
		{"first occurrence wins", []string{"A", "X", "A"}, []string{"A"}, 0, 0, 1},
		{"longest beats earlier", []string{"A", "Q", "B", "C"}, []string{"A", "B", "C"}, 2, 1, 2},
		{"tie prefers smaller b start", []string{"A"}, []string{"Z", "A", "A"}, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			startA, startB, length := LongestCommonRun(tt.a, tt.b)
			assert.Equal(t, tt.startA, startA)
			assert.Equal(t, tt.startB, startB)
			assert.Equal(t, tt.length, length)
		})
	}
}

func TestFormatClockDuration(t *testing.T) {
	assert.Equal(t, "01:02:03", FormatClockDuration(time.Hour+2*time.Minute+3*time.Second))
	assert.Equal(t, "-00:05:00", FormatClockDuration(-5*time.Minute))
	assert.Equal(t, "26:00:00", FormatClockDuration(26*time.Hour))
}

func TestFilterIndicesAndMap(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	indices := FilterIndices(s, func(i *int) bool { return *i%2 == 1 })
	assert.Equal(t, []int{0, 2, 4}, indices)
	assert.Equal(t, []int{1, 3, 5}, Map(indices, func(i int) int { return s[i] }))
}
