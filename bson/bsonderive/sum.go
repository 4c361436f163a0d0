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

// DeriveUnionHandler builds a Handler[T] for a sum (discriminated-union)
// type dispatched on a "className"-style tag field (§4.4). T is normally
// an interface; variants is a zero value of each concrete struct that
// implements it (e.g. DeriveUnionHandler[Shape](cfg, Circle{}, Square{})).
// Each variant is derived as a plain record — no discriminator field of
// its own — and the discriminator element is added on write / stripped
// and dispatched on read by this function.
//
// Two variants resolving to the same discriminator value under cfg's
// TypeNaming (or a WithVariantName override) is a construction-time
// DerivationError (§4.4, "collision detection at generation time"), not a
// runtime ambiguity.
func DeriveUnionHandler[T any](cfg *Config, variants ...T) (bsoncodec.Handler[T], error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if len(variants) == 0 {
		return bsoncodec.Handler[T]{}, &bson.DerivationError{TypeName: fmt.Sprintf("%T", *new(T)), Reason: "DeriveUnionHandler requires at least one variant"}
	}

	e := newEngine(cfg)

	type variantEntry struct {
		typ reflect.Type
		rc  *recordCodec
	}
	entries := make([]variantEntry, 0, len(variants))

	for _, zv := range variants {
		vt := reflect.TypeOf(zv)
		if vt == nil || vt.Kind() != reflect.Struct {
			return bsoncodec.Handler[T]{}, &bson.DerivationError{TypeName: fmt.Sprintf("%v", vt), Reason: "sum variants must be structs (records or singleton markers)"}
		}
		rc, err := e.describeRecord(vt)
		if err != nil {
			return bsoncodec.Handler[T]{}, err
		}
		entries = append(entries, variantEntry{typ: vt, rc: rc})
	}
	if err := e.resolveAll(); err != nil {
		return bsoncodec.Handler[T]{}, err
	}

	byName := make(map[string]variantEntry, len(entries))
	byType := make(map[reflect.Type]string, len(entries))
	for _, en := range entries {
		name := cfg.variantName(en.typ)
		if prev, exists := byName[name]; exists {
			return bsoncodec.Handler[T]{}, &bson.DerivationError{TypeName: en.typ.String(), Reason: fmt.Sprintf("discriminator %q collides with variant %s", name, prev.typ.String())}
		}
		byName[name] = en
		byType[en.typ] = name
	}

	discriminator := cfg.discriminator

	reader := bsoncodec.FuncReader[T](func(v bson.Value) (T, error) {
		var zero T
		d, ok := v.(bson.Document)
		if !ok {
			return zero, &bson.TypeMismatchError{Expected: bson.TypeEmbeddedDocument, Actual: v.Type()}
		}
		tagVal, ok := d.Get(discriminator)
		if !ok {
			return zero, bson.WrapPath(discriminator, &bson.ValueNotFoundError{Path: discriminator})
		}
		tagStr, ok := tagVal.(bson.String)
		if !ok {
			return zero, bson.WrapPath(discriminator, &bson.TypeMismatchError{Expected: bson.TypeString, Actual: tagVal.Type()})
		}
		en, ok := byName[string(tagStr)]
		if !ok {
			return zero, bson.WrapPath(discriminator, &bson.TypeMismatchError{Expected: bson.TypeString, Actual: tagVal.Type()})
		}
		payload := d.RemoveKeys(discriminator)
		sv, err := en.rc.readDocValue(payload)
		if err != nil {
			return zero, err
		}
		return sv.Interface().(T), nil
	})

	writer := bsoncodec.FuncWriter[T](func(t T) (bson.Value, error) {
		vt := reflect.TypeOf(t)
		en, ok := func() (variantEntry, bool) {
			for _, e := range entries {
				if e.typ == vt {
					return e, true
				}
			}
			return variantEntry{}, false
		}()
		if !ok {
			return nil, &bson.DerivationError{TypeName: fmt.Sprintf("%v", vt), Reason: "not a registered variant of this sum type"}
		}
		d, err := en.rc.writeDocValue(reflect.ValueOf(t))
		if err != nil {
			return nil, err
		}
		return d.Append(bson.NewElement(discriminator, bson.String(byType[vt]))), nil
	})

	return bsoncodec.NewHandler[T](reader, writer), nil
}
