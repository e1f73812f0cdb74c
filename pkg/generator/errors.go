package generator

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyRoutePart       = errors.New("route part has no timetable entries")
	ErrNoRouteParts         = errors.New("train has no route parts")
	ErrNonConsecutive       = errors.New("route parts do not join")
	ErrMultipleTimeFixes    = errors.New("more than one route part has a time fix")
	ErrTimeFixNotApplicable = errors.New("time fix anchor is missing")
	ErrRouteReferenceCycle  = errors.New("route references form a cycle")
	ErrUnknownTrainConfig   = errors.New("no train config with this number")
)

// ZugError attaches the train a build failure belongs to.
type ZugError struct {
	Gattung string
	Nummer  string
	Err     error
}

func (e *ZugError) Error() string {
	return fmt.Sprintf("train %s %s: %s", e.Gattung, e.Nummer, e.Err)
}

func (e *ZugError) Unwrap() error {
	return e.Err
}
