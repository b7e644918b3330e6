package seqdiagram

import "errors"

var (
	// ErrNotLaidOut is returned when a diagram is sized or drawn before Layout succeeded.
	ErrNotLaidOut = errors.New("diagram layout not yet computed")
	// ErrUnknownEntity is returned when a message or bar refers to an entity the diagram does
	// not contain.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrNoEndpoints is returned for an arrow with neither a source nor a target.
	ErrNoEndpoints = errors.New("arrow needs a source, a target, or both")
)
