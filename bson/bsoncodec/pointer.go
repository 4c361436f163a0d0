// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsoncodec

import "github.com/ornicar/ReactiveMongo-BSON/bson"

// PointerReader/PointerWriter/PointerHandler give *T the same
// absent-or-Null-means-None semantics as Option[T] (§4.1, §4.4). A plain
// Go struct cannot embed Option[Self] in a self-referential field — the
// instantiation would make the struct's own layout infinite — so
// bsonderive represents a recursive optional field as *Self instead, and
// this pair is what it reaches for when describing one.
func PointerReader[T any](inner Reader[T]) Reader[*T] {
	return FuncReader[*T](func(v bson.Value) (*T, error) {
		if _, isNull := v.(bson.Null); isNull {
			return nil, nil
		}
		t, err := inner.ReadTry(v)
		if err != nil {
			return nil, err
		}
		return &t, nil
	})
}

// PointerWriter encodes a nil *T as Null, mirroring OptionWriter. As with
// Option, whether a nil field is omitted instead of written as Null is
// decided one level up by the record writer.
func PointerWriter[T any](inner Writer[T]) Writer[*T] {
	return FuncWriter[*T](func(p *T) (bson.Value, error) {
		if p == nil {
			return bson.Null{}, nil
		}
		return inner.WriteTry(*p)
	})
}

// PointerHandler is the built-in Handler for *T given a Handler[T].
func PointerHandler[T any](inner Handler[T]) Handler[*T] {
	return NewHandler[*T](PointerReader[T](inner), PointerWriter[T](inner))
}
