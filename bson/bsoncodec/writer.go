// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsoncodec

import "github.com/ornicar/ReactiveMongo-BSON/bson"

// Writer encodes a T into a bson.Value.
type Writer[T any] interface {
	WriteTry(t T) (bson.Value, error)
}

// FuncWriter adapts a plain function to a Writer.
type FuncWriter[T any] func(T) (bson.Value, error)

func (f FuncWriter[T]) WriteTry(t T) (bson.Value, error) { return f(t) }

// SafeWriter is a Writer that is total over T: every T value has a
// corresponding bson.Value, with no failure case (§4.3, "a writer is safe
// if it is total over T"). Derived record writers are safe iff every
// field writer is safe.
type SafeWriter[T any] interface {
	Writer[T]
	SafeWrite(t T) bson.Value
}

type funcSafeWriter[T any] struct {
	f func(T) bson.Value
}

func (s funcSafeWriter[T]) WriteTry(t T) (bson.Value, error) { return s.f(t), nil }
func (s funcSafeWriter[T]) SafeWrite(t T) bson.Value         { return s.f(t) }

// NewSafeWriter builds a SafeWriter from a total function.
func NewSafeWriter[T any](f func(T) bson.Value) SafeWriter[T] {
	return funcSafeWriter[T]{f: f}
}

// WriteOpt returns (value, true) on success and (nil, false) on any
// failure — must agree with WriteTry.
func WriteOpt[T any](w Writer[T], t T) (bson.Value, bool) {
	v, err := w.WriteTry(t)
	if err != nil {
		return nil, false
	}
	return v, true
}

// Contramap builds a Writer[T] from a Writer[U] by mapping T to U first
// (§4.3 "contramap"). BeforeWrite is the same operation under the name
// the real reader/writer pair exposes it as.
func Contramap[T, U any](w Writer[U], f func(T) U) Writer[T] {
	return FuncWriter[T](func(t T) (bson.Value, error) {
		return w.WriteTry(f(t))
	})
}

// BeforeWrite is Contramap under its other name (§4.3).
func BeforeWrite[T, U any](w Writer[U], f func(T) U) Writer[T] {
	return Contramap(w, f)
}

// Narrow restricts a Writer[T] to a Writer[U] via an always-succeeding
// downcast, mirroring the contravariant `narrow[U <: T]` operation (§4.3).
func Narrow[T, U any](w Writer[T], down func(U) T) Writer[U] {
	return Contramap(w, down)
}

// AfterWrite post-transforms the bson.Value a Writer produces.
func AfterWrite[T any](w Writer[T], f func(bson.Value) bson.Value) Writer[T] {
	return FuncWriter[T](func(t T) (bson.Value, error) {
		v, err := w.WriteTry(t)
		if err != nil {
			return nil, err
		}
		return f(v), nil
	})
}
