package zugnummer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidTrainNumber  = errors.New("invalid train number")
	ErrTrainNumberNegative = errors.New("train number would become negative")
	ErrTrainNumberOverflow = errors.New("train number would overflow")
)

const Separator = "_"

// Zugnummer is a train number made of one or more non-negative components,
// written joined by underscores (e.g. "10001" or "1_203").
type Zugnummer []uint64

func Parse(value string) (Zugnummer, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTrainNumber, value)
	}

	parts := strings.Split(value, Separator)
	nummer := make(Zugnummer, 0, len(parts))
	for _, part := range parts {
		component, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTrainNumber, value)
		}
		nummer = append(nummer, component)
	}

	return nummer, nil
}

func (n Zugnummer) String() string {
	parts := make([]string, 0, len(n))
	for _, component := range n {
		parts = append(parts, strconv.FormatUint(component, 10))
	}
	return strings.Join(parts, Separator)
}

// Increment adds by to every component.
func (n Zugnummer) Increment(by int64) (Zugnummer, error) {
	result := make(Zugnummer, 0, len(n))
	for _, component := range n {
		if by < 0 {
			decrement := uint64(-by)
			if component < decrement {
				return nil, fmt.Errorf("%w: %s %+d", ErrTrainNumberNegative, n, by)
			}
			result = append(result, component-decrement)
		} else {
			if component > math.MaxUint64-uint64(by) {
				return nil, fmt.Errorf("%w: %s %+d", ErrTrainNumberOverflow, n, by)
			}
			result = append(result, component+uint64(by))
		}
	}
	return result, nil
}

// Compare orders train numbers component by component; a proper prefix sorts
// first.
func Compare(a, b Zugnummer) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
