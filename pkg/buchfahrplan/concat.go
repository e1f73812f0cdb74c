package buchfahrplan

import (
	"fmt"

	"github.com/zusitools/fahrplangen/pkg/zusi"
)

// Concat joins two printed row lists at station betrst. The first list is cut
// after its last row for betrst, the second starts at its first row for
// betrst; both rows are fused into one and the running distance of the second
// list continues where the first ended.
func Concat(first []zusi.FplZeile, second []zusi.FplZeile, betrst string) ([]zusi.FplZeile, error) {
	end := -1
	for i := len(first) - 1; i >= 0; i-- {
		if first[i].IsBetriebsstelle(betrst) {
			end = i
			break
		}
	}

	start := -1
	for i := range second {
		if second[i].IsBetriebsstelle(betrst) {
			start = i
			break
		}
	}

	if end < 0 || start < 0 {
		return nil, fmt.Errorf("%w: %s missing on one side", ErrNonConsecutive, betrst)
	}

	a := first[end]
	tail := make([]zusi.FplZeile, len(second)-start)
	copy(tail, second[start:])
	b := &tail[0]

	if !a.SameKm(b) {
		return nil, fmt.Errorf("%w: kilometre differs at %s", ErrNonConsecutive, betrst)
	}
	if a.FplAbf == nil && b.FplAbf == nil {
		return nil, fmt.Errorf("%w: no departure at %s", ErrNonConsecutive, betrst)
	}

	offset := a.FplLaufweg - b.FplLaufweg

	if b.FplAnk == nil && a.FplAnk != nil {
		b.SetAnk(a.FplAnk.Ank)
	}
	if b.FplAbf == nil && a.FplAbf != nil {
		b.SetAbf(a.FplAbf.Abf)
	}

	for i := range tail {
		tail[i].FplLaufweg += offset
	}

	result := make([]zusi.FplZeile, 0, end+len(tail))
	result = append(result, first[:end]...)
	result = append(result, tail...)

	return result, nil
}
