// Package errors provides the structured error type shared by pipekit packages.
// Configuration and arity failures carry a machine-readable code so callers can
// tell them apart from errors raised by their own transformations, which are
// never wrapped.
package errors
