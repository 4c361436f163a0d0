// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValuesEqualScalars(t *testing.T) {
	require.True(t, ValuesEqual(Int32(1), Int32(1)))
	require.False(t, ValuesEqual(Int32(1), Int32(2)))
	require.False(t, ValuesEqual(Int32(1), Int64(1)), "different variants are never equal")
}

func TestValuesEqualNil(t *testing.T) {
	require.True(t, ValuesEqual(nil, nil))
	require.False(t, ValuesEqual(nil, Int32(0)))
	require.False(t, ValuesEqual(Int32(0), nil))
}

func TestValuesEqualDocumentUsesMapSemantics(t *testing.T) {
	a := NewDocument(NewElement("x", Int32(1)), NewElement("y", Int32(2)))
	b := NewDocument(NewElement("y", Int32(2)), NewElement("x", Int32(1)))
	require.True(t, ValuesEqual(a, b))
}

func TestValuesEqualArrayIsPositional(t *testing.T) {
	a := NewArray(Int32(1), Int32(2))
	b := NewArray(Int32(2), Int32(1))
	require.False(t, ValuesEqual(a, b))
}

func TestValuesEqualBinary(t *testing.T) {
	a := Binary{Subtype: 0, Data: []byte{1, 2}}
	b := Binary{Subtype: 0, Data: []byte{1, 2}}
	require.True(t, ValuesEqual(a, b))
}

func TestValuesEqualCodeWithScope(t *testing.T) {
	scope := NewDocument(NewElement("a", Int32(1)))
	a := CodeWithScope{Code: "f()", Scope: scope}
	b := CodeWithScope{Code: "f()", Scope: scope}
	require.True(t, ValuesEqual(a, b))

	c := CodeWithScope{Code: "g()", Scope: scope}
	require.False(t, ValuesEqual(a, c))
}

func TestValuesEqualNestedDocumentInArray(t *testing.T) {
	a := NewArray(NewDocument(NewElement("x", Int32(1))))
	b := NewArray(NewDocument(NewElement("x", Int32(1))))
	require.True(t, ValuesEqual(a, b))
}
