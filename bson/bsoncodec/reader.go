// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package bsoncodec is the generic Reader/Writer/Handler trait layer (L3):
// composable contracts over bson.Value, grounded on the teacher's
// bsoncodec.ValueEncoder/ValueDecoder pair but expressed with Go generics
// instead of an interface{}-typed registry, since this layer's contracts
// are themselves the thing derivation (bsonderive) composes.
package bsoncodec

import "github.com/ornicar/ReactiveMongo-BSON/bson"

// Reader decodes a bson.Value into a T.
type Reader[T any] interface {
	ReadTry(v bson.Value) (T, error)
}

// FuncReader adapts a plain function to a Reader.
type FuncReader[T any] func(bson.Value) (T, error)

func (f FuncReader[T]) ReadTry(v bson.Value) (T, error) { return f(v) }

// ReadOpt returns (result, true) on success and (zero, false) on any
// failure — must agree with ReadTry (§4.3).
func ReadOpt[T any](r Reader[T], v bson.Value) (T, bool) {
	t, err := r.ReadTry(v)
	if err != nil {
		var zero T
		return zero, false
	}
	return t, true
}

// ReadOrElse returns def on any read failure.
func ReadOrElse[T any](r Reader[T], v bson.Value, def T) T {
	t, err := r.ReadTry(v)
	if err != nil {
		return def
	}
	return t
}

// Map applies a total, infallible transform to a successfully-read value
// (§4.3 Reader combinator "map").
func Map[T, U any](r Reader[T], f func(T) U) Reader[U] {
	return FuncReader[U](func(v bson.Value) (U, error) {
		t, err := r.ReadTry(v)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(t), nil
	})
}

// AfterRead chains a fallible transform onto a successful read, the way a
// derived field reader validates or reshapes a decoded value before
// handing it to the record constructor (§4.3).
func AfterRead[T, U any](r Reader[T], f func(T) (U, error)) Reader[U] {
	return FuncReader[U](func(v bson.Value) (U, error) {
		t, err := r.ReadTry(v)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(t)
	})
}

// Collect restricts a Reader along a partial function: when f reports
// false, the combined Reader fails with DecodeFailureError (§4.3 "collect
// (partial)").
func Collect[T, U any](r Reader[T], f func(T) (U, bool)) Reader[U] {
	return FuncReader[U](func(v bson.Value) (U, error) {
		t, err := r.ReadTry(v)
		if err != nil {
			var zero U
			return zero, err
		}
		u, ok := f(t)
		if !ok {
			var zero U
			return zero, &bson.DecodeFailureError{Reason: "value rejected by collect predicate"}
		}
		return u, nil
	})
}

// Widen re-targets a Reader[T] as a Reader[U] via an always-succeeding
// upcast, mirroring the covariant `widen[U >: T]` operation on a BSON
// reader (§4.3, §9 "ad-hoc polymorphism over sum shapes").
func Widen[T, U any](r Reader[T], up func(T) U) Reader[U] {
	return Map(r, up)
}

// BeforeRead pre-transforms the raw bson.Value before r sees it.
func BeforeRead[T any](r Reader[T], f func(bson.Value) bson.Value) Reader[T] {
	return FuncReader[T](func(v bson.Value) (T, error) {
		return r.ReadTry(f(v))
	})
}
