// ABOUTME: Structured error kinds for planning failures
// ABOUTME: Invalid assumptions (pre-solve) and infeasible constraint systems

package services

import (
	"errors"
	"fmt"
)

// ErrInvalidAssumption is the sentinel for assumption validation
// failures; match with errors.Is.
var ErrInvalidAssumption = errors.New("invalid assumption")

// ErrInfeasible is the sentinel for solves with no feasible point;
// match with errors.Is.
var ErrInfeasible = errors.New("infeasible")

// InvalidAssumptionError reports a rate or quota that violates its
// documented bounds. Raised by decomposition before any solve runs.
type InvalidAssumptionError struct {
	Reason string
}

func (e *InvalidAssumptionError) Error() string {
	return fmt.Sprintf("invalid assumption: %s", e.Reason)
}

func (e *InvalidAssumptionError) Is(target error) bool {
	return target == ErrInvalidAssumption
}

// InfeasibleError reports that no headcount mix satisfies all
// equalities, inequalities, and bounds simultaneously. The caller is
// expected to adjust constraints and re-invoke; retrying with the same
// inputs is pointless.
type InfeasibleError struct {
	Reason string
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("no feasible headcount plan: %s", e.Reason)
}

func (e *InfeasibleError) Is(target error) bool {
	return target == ErrInfeasible
}
