package txpipeline

import (
	"errors"
	"fmt"
)

var errNoReturnValue = errors.New("simulation returned no result")

// AccountLoadError is returned when the source account of a write could not be loaded.
type AccountLoadError struct {
	Account string
	Err     error
}

func (e *AccountLoadError) Error() string {
	return fmt.Sprintf("failed to load source account %s: %v", e.Account, e.Err)
}

func (e *AccountLoadError) Unwrap() error { return e.Err }

// SimulationError is returned when the network rejected the simulation of a write. Message is
// the network's diagnostic text, unmodified.
type SimulationError struct {
	Method  string
	Message string
	// Err is set when the simulation request itself failed.
	Err error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("simulation of %s failed: %s", e.Method, e.Message)
}

func (e *SimulationError) Unwrap() error { return e.Err }

// ViewSimulationError is returned when a read-only invocation could not be simulated or
// produced no return value.
type ViewSimulationError struct {
	Method string
	Err    error
}

func (e *ViewSimulationError) Error() string {
	return fmt.Sprintf("view simulation failed for %s: %v", e.Method, e.Err)
}

func (e *ViewSimulationError) Unwrap() error { return e.Err }
