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

func TestArrayBasics(t *testing.T) {
	a := NewArray(Int32(1), Int32(2), Int32(3))
	require.Equal(t, 3, a.Size())
	require.False(t, a.IsEmpty())

	v, ok := a.Get(1)
	require.True(t, ok)
	require.Equal(t, Int32(2), v)

	_, ok = a.Get(9)
	require.False(t, ok)
}

func TestArrayByteSize(t *testing.T) {
	a := NewArray(Int32(1), Int32(2))
	// header+trailer(5) + ("0": 1+1+1+4) + ("1": 1+1+1+4)
	require.Equal(t, int32(5+7+7), a.ByteSize())
}

func TestArrayAppendAndConcat(t *testing.T) {
	a := NewArray(Int32(1))
	b := a.Append(Int32(2))
	require.Equal(t, 1, a.Size())
	require.Equal(t, 2, b.Size())

	c := a.Concat(NewArray(Int32(5), Int32(6)))
	require.Equal(t, 3, c.Size())
}

func TestArrayEqualIsPositionSensitive(t *testing.T) {
	a := NewArray(Int32(1), Int32(2))
	b := NewArray(Int32(2), Int32(1))
	require.False(t, a.Equal(b), "array equality must not be a multiset comparison")

	c := NewArray(Int32(1), Int32(2))
	require.True(t, a.Equal(c))
}

func TestArrayEqualDifferentLength(t *testing.T) {
	a := NewArray(Int32(1))
	b := NewArray(Int32(1), Int32(2))
	require.False(t, a.Equal(b))
}
