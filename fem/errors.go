// Copyright 2026 The Struktur Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

// ErrorKind classifies engine failures so callers can tell "blocked by
// validation" apart from "solved but numerically unreliable"
type ErrorKind int

// error kinds
const (
	ErrValidation     ErrorKind = iota // malformed input caught before assembly
	ErrSingularMatrix                  // near-zero pivot: unrestrained or disconnected structure
	ErrConvergence                     // iterative solver exceeded its iteration cap
	ErrCalculation                     // unexpected numeric condition
)

var errorKindNames = []string{"validation", "singular matrix", "convergence", "calculation"}

// String returns the name of this kind
func (o ErrorKind) String() string {
	if o < ErrValidation || o > ErrCalculation {
		return io.Sf("ErrorKind(%d)", int(o))
	}
	return errorKindNames[o]
}

// EngineError is a classified analysis failure with a diagnostic message
type EngineError struct {
	Kind ErrorKind
	Msg  string
}

// Error implements the error interface
func (o *EngineError) Error() string {
	return io.Sf("%s error: %s", o.Kind, o.Msg)
}

// newErr creates a classified engine error
func newErr(kind ErrorKind, format string, prm ...interface{}) *EngineError {
	return &EngineError{Kind: kind, Msg: io.Sf(format, prm...)}
}

// KindOf extracts the ErrorKind from an error chain; unclassified errors
// report ErrCalculation
func KindOf(err error) ErrorKind {
	var e *EngineError
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrCalculation
}
