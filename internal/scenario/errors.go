package scenario

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidScenario reports a structurally invalid file or scenario:
	// missing name, duplicate name, wrong input arity or no expectation.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrUnknownKind reports a kind outside the supported set.
	ErrUnknownKind = errors.New("scenario: unknown kind")

	// ErrNaNInf reports a NaN or infinite number in inputs or expectations.
	ErrNaNInf = errors.New("scenario: NaN or Inf input")
)

// scenarioErrorf prefixes err with the scenario position and name, keeping it
// matchable via errors.Is.
func scenarioErrorf(index int, name string, err error) error {
	return fmt.Errorf("scenario %d (%q): %w", index, name, err)
}
