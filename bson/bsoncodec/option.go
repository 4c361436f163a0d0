// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsoncodec

import "github.com/ornicar/ReactiveMongo-BSON/bson"

// Option is the Go stand-in for the optional-value type spec.md's field
// reader/writer contracts talk about (§4.1, §6). Derivation uses it for
// every field typed Option[T]: absent-or-Null on read both map to
// Present=false; the default write policy omits the field entirely on
// Present=false, while an opt-in NoneAsNull policy writes a Null (§4.4).
type Option[T any] struct {
	Value   T
	Present bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] { return Option[T]{Value: v, Present: true} }

// None is the absent Option value for T.
func None[T any]() Option[T] {
	var zero T
	return Option[T]{Value: zero, Present: false}
}

// OptionReader decodes Null as None and any other value via inner. It
// never fails on Null; a non-Null, non-decodable value still propagates
// inner's failure.
func OptionReader[T any](inner Reader[T]) Reader[Option[T]] {
	return FuncReader[Option[T]](func(v bson.Value) (Option[T], error) {
		if _, isNull := v.(bson.Null); isNull {
			return None[T](), nil
		}
		t, err := inner.ReadTry(v)
		if err != nil {
			return Option[T]{}, err
		}
		return Some(t), nil
	})
}

// OptionWriter encodes None as Null. The default write policy of omitting
// the field entirely on None is implemented one level up, by the record
// writer deciding whether to call this Writer at all (§4.4); this Writer
// always produces a Value, for the NoneAsNull-configured path and for
// direct use outside a record.
func OptionWriter[T any](inner Writer[T]) Writer[Option[T]] {
	return FuncWriter[Option[T]](func(o Option[T]) (bson.Value, error) {
		if !o.Present {
			return bson.Null{}, nil
		}
		return inner.WriteTry(o.Value)
	})
}

// OptionHandler is the built-in Handler for Option[T] given a Handler[T]
// for the wrapped type (§6).
func OptionHandler[T any](inner Handler[T]) Handler[Option[T]] {
	return NewHandler[Option[T]](OptionReader[T](inner), OptionWriter[T](inner))
}
