// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

import "fmt"

// TypeMismatchError reports that a value does not match the expected BSON
// type at a given position (§7).
type TypeMismatchError struct {
	Path     string
	Expected Type
	Actual   Type
}

func (e *TypeMismatchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
	}
	return fmt.Sprintf("type mismatch at %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// ValueNotFoundError reports a required key absent from a document, or an
// index out of range in an array (§7).
type ValueNotFoundError struct {
	Path string
}

func (e *ValueNotFoundError) Error() string {
	return fmt.Sprintf("value not found: %s", e.Path)
}

// DecodeFailureError reports a value that decoded structurally but violated
// a semantic constraint: a Decimal128 not representable as the requested
// integral type, an invalid ObjectID hex string, and so on (§7).
type DecodeFailureError struct {
	Path   string
	Reason string
}

func (e *DecodeFailureError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode failure: %s", e.Reason)
	}
	return fmt.Sprintf("decode failure at %s: %s", e.Path, e.Reason)
}

// DerivationError reports a shape the derivation layer cannot handle,
// raised only at codec construction time: a flattened field on a recursive
// type, a flattened field on a non-record type, ambiguous sum
// discriminators (§7, §4.4).
type DerivationError struct {
	TypeName string
	Reason   string
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("cannot derive codec for %s: %s", e.TypeName, e.Reason)
}

// WrapPath prefixes err's message with name, the way a record-level derived
// reader attaches the offending field name to a nested failure (§7). The
// original error remains reachable through errors.Unwrap.
func WrapPath(name string, err error) error {
	if err == nil {
		return nil
	}
	return &pathError{name: name, err: err}
}

type pathError struct {
	name string
	err  error
}

func (e *pathError) Error() string { return fmt.Sprintf("%s: %s", e.name, e.err) }
func (e *pathError) Unwrap() error { return e.err }
