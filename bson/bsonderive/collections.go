// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonderive

import (
	"reflect"
	"sort"
	"strconv"

	"github.com/ornicar/ReactiveMongo-BSON/bson"
)

// sliceReadAny/sliceWriteAny/mapReadAny/mapWriteAny are resolveElem's
// reflection-level counterparts to bsoncodec.SliceHandler/MapHandler:
// the generic versions need T at compile time, but a derived field's
// element type is only ever known as a reflect.Type, so the slice/map
// itself has to be assembled with reflect.MakeSlice/MakeMap instead of a
// literal []T/map[string]T.

func sliceReadAny(elemType reflect.Type, elemRead func(bson.Value) (any, error)) func(bson.Value) (any, error) {
	return func(v bson.Value) (any, error) {
		a, ok := v.(bson.Array)
		if !ok {
			return nil, &bson.TypeMismatchError{Expected: bson.TypeArray, Actual: v.Type()}
		}
		values := a.Values()
		out := reflect.MakeSlice(reflect.SliceOf(elemType), 0, len(values))
		for i, ev := range values {
			t, err := elemRead(ev)
			if err != nil {
				return nil, bson.WrapPath(strconv.Itoa(i), err)
			}
			out = reflect.Append(out, reflect.ValueOf(t))
		}
		return out.Interface(), nil
	}
}

func sliceWriteAny(elemWrite func(any) (bson.Value, error)) func(any) (bson.Value, error) {
	return func(a any) (bson.Value, error) {
		sv := reflect.ValueOf(a)
		values := make([]bson.Value, sv.Len())
		for i := 0; i < sv.Len(); i++ {
			v, err := elemWrite(sv.Index(i).Interface())
			if err != nil {
				return nil, bson.WrapPath(strconv.Itoa(i), err)
			}
			values[i] = v
		}
		return bson.NewArray(values...), nil
	}
}

func mapReadAny(mapType reflect.Type, elemRead func(bson.Value) (any, error)) func(bson.Value) (any, error) {
	return func(v bson.Value) (any, error) {
		d, ok := v.(bson.Document)
		if !ok {
			return nil, &bson.TypeMismatchError{Expected: bson.TypeEmbeddedDocument, Actual: v.Type()}
		}
		out := reflect.MakeMapWithSize(mapType, d.Size())
		for _, e := range d.Elements() {
			t, err := elemRead(e.Value)
			if err != nil {
				return nil, bson.WrapPath(e.Name, err)
			}
			out.SetMapIndex(reflect.ValueOf(e.Name), reflect.ValueOf(t))
		}
		return out.Interface(), nil
	}
}

func mapWriteAny(elemWrite func(any) (bson.Value, error)) func(any) (bson.Value, error) {
	return func(a any) (bson.Value, error) {
		mv := reflect.ValueOf(a)
		keys := mv.MapKeys()
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		sort.Strings(names)

		elems := make([]bson.Element, 0, len(names))
		for _, name := range names {
			v, err := elemWrite(mv.MapIndex(reflect.ValueOf(name)).Interface())
			if err != nil {
				return nil, bson.WrapPath(name, err)
			}
			elems = append(elems, bson.NewElement(name, v))
		}
		return bson.NewDocument(elems...), nil
	}
}
