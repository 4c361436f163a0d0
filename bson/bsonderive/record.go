// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonderive

import (
	"fmt"
	"reflect"

	"github.com/ornicar/ReactiveMongo-BSON/bson"
	"github.com/ornicar/ReactiveMongo-BSON/bson/bsoncodec"
)

// DeriveHandler reflects over T — which must be a struct — and builds a
// Handler[T] that reads and writes it as a BSON document, one element per
// exported field, honoring cfg's naming policy, discriminator-irrelevant
// here, and per-field ignore/rename/flatten/noneAsNull overrides (§4.4).
//
// T may refer to itself through a pointer field (a direct non-pointer
// self-embedding wouldn't compile); DeriveHandler resolves that recursion
// via the two-phase describeRecord/resolveAll construction in engine.go
// before returning (§9, "recursive derivation").
func DeriveHandler[T any](cfg *Config) (bsoncodec.Handler[T], error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil || t.Kind() != reflect.Struct {
		return bsoncodec.Handler[T]{}, &bson.DerivationError{TypeName: fmt.Sprintf("%T", zero), Reason: "DeriveHandler requires a struct type"}
	}

	e := newEngine(cfg)
	rc, err := e.describeRecord(t)
	if err != nil {
		return bsoncodec.Handler[T]{}, err
	}
	if err := e.resolveAll(); err != nil {
		return bsoncodec.Handler[T]{}, err
	}

	reader := bsoncodec.FuncReader[T](func(v bson.Value) (T, error) {
		var zero T
		d, ok := v.(bson.Document)
		if !ok {
			return zero, &bson.TypeMismatchError{Expected: bson.TypeEmbeddedDocument, Actual: v.Type()}
		}
		sv, err := rc.readDocValue(d)
		if err != nil {
			return zero, err
		}
		return sv.Interface().(T), nil
	})
	writer := bsoncodec.FuncWriter[T](func(t T) (bson.Value, error) {
		return rc.writeDocValue(reflect.ValueOf(t))
	})
	return bsoncodec.NewHandler[T](reader, writer), nil
}
