// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsoncodec

import (
	"sort"
	"strconv"

	"github.com/ornicar/ReactiveMongo-BSON/bson"
)

// SliceReader decodes a BSON Array into an ordered []T (§6, "ordered
// sequences"). A per-element failure is reported with its index spliced
// onto the path, the way a derived record reader attaches a field name.
func SliceReader[T any](elem Reader[T]) Reader[[]T] {
	return FuncReader[[]T](func(v bson.Value) ([]T, error) {
		a, ok := v.(bson.Array)
		if !ok {
			return nil, &bson.TypeMismatchError{Expected: bson.TypeArray, Actual: v.Type()}
		}
		values := a.Values()
		out := make([]T, 0, len(values))
		for i, ev := range values {
			t, err := elem.ReadTry(ev)
			if err != nil {
				return nil, bson.WrapPath(strconv.Itoa(i), err)
			}
			out = append(out, t)
		}
		return out, nil
	})
}

// SliceWriter encodes an ordered []T as a BSON Array.
func SliceWriter[T any](elem Writer[T]) Writer[[]T] {
	return FuncWriter[[]T](func(ts []T) (bson.Value, error) {
		values := make([]bson.Value, len(ts))
		for i, t := range ts {
			v, err := elem.WriteTry(t)
			if err != nil {
				return nil, bson.WrapPath(strconv.Itoa(i), err)
			}
			values[i] = v
		}
		return bson.NewArray(values...), nil
	})
}

// SliceHandler is the built-in Handler for []T (§6).
func SliceHandler[T any](elem Handler[T]) Handler[[]T] {
	return NewHandler[[]T](SliceReader[T](elem), SliceWriter[T](elem))
}

// MapReader decodes a BSON Document into a map[string]T, the "mappings
// from string keys" collection of §6.
func MapReader[T any](elem Reader[T]) Reader[map[string]T] {
	return FuncReader[map[string]T](func(v bson.Value) (map[string]T, error) {
		d, ok := v.(bson.Document)
		if !ok {
			return nil, &bson.TypeMismatchError{Expected: bson.TypeEmbeddedDocument, Actual: v.Type()}
		}
		out := make(map[string]T, d.Size())
		for _, e := range d.Elements() {
			t, err := elem.ReadTry(e.Value)
			if err != nil {
				return nil, bson.WrapPath(e.Name, err)
			}
			out[e.Name] = t
		}
		return out, nil
	})
}

// MapWriter encodes a map[string]T as a BSON Document, with keys sorted
// for deterministic output (§8 property 6, "derivation determinism").
func MapWriter[T any](elem Writer[T]) Writer[map[string]T] {
	return FuncWriter[map[string]T](func(m map[string]T) (bson.Value, error) {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		elems := make([]bson.Element, 0, len(m))
		for _, k := range keys {
			v, err := elem.WriteTry(m[k])
			if err != nil {
				return nil, bson.WrapPath(k, err)
			}
			elems = append(elems, bson.NewElement(k, v))
		}
		return bson.NewDocument(elems...), nil
	})
}

// MapHandler is the built-in Handler for map[string]T (§6).
func MapHandler[T any](elem Handler[T]) Handler[map[string]T] {
	return NewHandler[map[string]T](MapReader[T](elem), MapWriter[T](elem))
}

// Set is an insertion-ordered collection with no duplicate values, the
// "sets" collection of §6. Go has no builtin ordered-set type; this keeps
// a slice for deterministic write order alongside membership checks.
type Set[T comparable] struct {
	values []T
}

// NewSet builds a Set from vs, keeping only the first occurrence of each
// distinct value and preserving that first-occurrence order.
func NewSet[T comparable](vs ...T) Set[T] {
	seen := make(map[T]struct{}, len(vs))
	out := make([]T, 0, len(vs))
	for _, v := range vs {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return Set[T]{values: out}
}

// Values returns the set's members in insertion order. The returned slice
// is a copy.
func (s Set[T]) Values() []T {
	cp := make([]T, len(s.values))
	copy(cp, s.values)
	return cp
}

// Contains reports whether v is a member of s.
func (s Set[T]) Contains(v T) bool {
	for _, x := range s.values {
		if x == v {
			return true
		}
	}
	return false
}

// Size returns the number of distinct members.
func (s Set[T]) Size() int { return len(s.values) }

// SetReader decodes a BSON Array into a Set[T], collapsing duplicates.
func SetReader[T comparable](elem Reader[T]) Reader[Set[T]] {
	return FuncReader[Set[T]](func(v bson.Value) (Set[T], error) {
		a, ok := v.(bson.Array)
		if !ok {
			return Set[T]{}, &bson.TypeMismatchError{Expected: bson.TypeArray, Actual: v.Type()}
		}
		values := a.Values()
		vs := make([]T, 0, len(values))
		for i, ev := range values {
			t, err := elem.ReadTry(ev)
			if err != nil {
				return Set[T]{}, bson.WrapPath(strconv.Itoa(i), err)
			}
			vs = append(vs, t)
		}
		return NewSet(vs...), nil
	})
}

// SetWriter encodes a Set[T] as a BSON Array in the set's insertion
// order.
func SetWriter[T comparable](elem Writer[T]) Writer[Set[T]] {
	return FuncWriter[Set[T]](func(s Set[T]) (bson.Value, error) {
		members := s.Values()
		values := make([]bson.Value, len(members))
		for i, t := range members {
			v, err := elem.WriteTry(t)
			if err != nil {
				return nil, bson.WrapPath(strconv.Itoa(i), err)
			}
			values[i] = v
		}
		return bson.NewArray(values...), nil
	})
}

// SetHandler is the built-in Handler for Set[T] (§6).
func SetHandler[T comparable](elem Handler[T]) Handler[Set[T]] {
	return NewHandler[Set[T]](SetReader[T](elem), SetWriter[T](elem))
}
