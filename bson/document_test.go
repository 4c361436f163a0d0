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

func TestDocumentBasics(t *testing.T) {
	d := NewDocument(NewElement("a", Int32(1)), NewElement("b", String("x")))
	require.Equal(t, 2, d.Size())
	require.False(t, d.IsEmpty())
	require.True(t, d.Contains("a"))
	require.False(t, d.Contains("z"))

	v, ok := d.Get("b")
	require.True(t, ok)
	require.Equal(t, String("x"), v)

	_, ok = d.Get("z")
	require.False(t, ok)
}

func TestDocumentByteSize(t *testing.T) {
	d := NewDocument(NewElement("a", Int32(1)))
	// header+trailer(5) + element(1+1+1+4=7)
	require.Equal(t, int32(12), d.ByteSize())
}

func TestDocumentHeadOption(t *testing.T) {
	d := NewDocument(NewElement("a", Int32(1)), NewElement("b", Int32(2)))
	h, ok := d.HeadOption()
	require.True(t, ok)
	require.Equal(t, "a", h.Name)

	_, ok = NewDocument().HeadOption()
	require.False(t, ok)
}

func TestDocumentGetLastWins(t *testing.T) {
	d := NewDocument(NewElement("a", Int32(1)), NewElement("a", Int32(2)))
	v, ok := d.Get("a")
	require.True(t, ok)
	require.Equal(t, Int32(2), v)
	require.Equal(t, Int32(2), d.ToMap()["a"])
}

func TestDocumentAppendNonStrictAllowsDuplicates(t *testing.T) {
	d := NewDocument(NewElement("a", Int32(1)))
	d2 := d.Append(NewElement("a", Int32(2)))
	require.Equal(t, 2, d2.Size())
	require.False(t, d2.IsStrict())
}

func TestStrictDocumentReplacesInPlace(t *testing.T) {
	d := NewStrictDocument(
		NewElement("a", Int32(1)),
		NewElement("b", Int32(2)),
		NewElement("a", Int32(9)),
	)
	require.True(t, d.IsStrict())
	require.Equal(t, 2, d.Size())

	elems := d.Elements()
	require.Equal(t, "a", elems[0].Name)
	require.Equal(t, Int32(9), elems[0].Value)
	require.Equal(t, "b", elems[1].Name)
}

func TestDocumentConcat(t *testing.T) {
	d1 := NewDocument(NewElement("a", Int32(1)))
	d2 := NewDocument(NewElement("b", Int32(2)))
	merged := d1.Concat(d2)
	require.Equal(t, 2, merged.Size())
}

func TestDocumentRemoveKeys(t *testing.T) {
	d := NewDocument(NewElement("a", Int32(1)), NewElement("b", Int32(2)))
	d2 := d.RemoveKeys("a")
	require.Equal(t, 1, d2.Size())
	require.False(t, d2.Contains("a"))
}

func TestDocumentElementAt(t *testing.T) {
	d := NewDocument(NewElement("a", Int32(1)))
	e, ok := d.ElementAt(0)
	require.True(t, ok)
	require.Equal(t, "a", e.Name)

	_, ok = d.ElementAt(5)
	require.False(t, ok)
}

func TestDocumentEqualIgnoresOrderAndAllowsDuplicateCollapse(t *testing.T) {
	d1 := NewDocument(NewElement("a", Int32(1)), NewElement("b", Int32(2)))
	d2 := NewDocument(NewElement("b", Int32(2)), NewElement("a", Int32(1)))
	require.True(t, d1.Equal(d2))

	d3 := NewDocument(NewElement("a", Int32(1)), NewElement("b", Int32(3)))
	require.False(t, d1.Equal(d3))

	d4 := NewDocument(NewElement("a", Int32(1)), NewElement("b", Int32(5)), NewElement("b", Int32(2)))
	require.True(t, d1.Equal(d4), "duplicate names collapse to the last occurrence")
}

func TestDocumentDiff(t *testing.T) {
	d1 := NewDocument(NewElement("a", Int32(1)), NewElement("b", Int32(2)))
	d2 := NewDocument(NewElement("a", Int32(1)), NewElement("b", Int32(9)))
	require.Equal(t, []string{"b"}, d2.Diff(d1))
}

func TestDocumentAppendElementsImmutable(t *testing.T) {
	d1 := NewDocument(NewElement("a", Int32(1)))
	d2 := d1.Append(NewElement("b", Int32(2)))
	require.Equal(t, 1, d1.Size())
	require.Equal(t, 2, d2.Size())
}
