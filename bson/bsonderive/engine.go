// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonderive

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ornicar/ReactiveMongo-BSON/bson"
)

// fieldDescription is one struct field's derivation plan: its wire name,
// whether it is ignored/flattened/optional, and (once resolveAll has run)
// the read/write closures for its element type.
type fieldDescription struct {
	name       string
	index      int
	ignore     bool
	flatten    bool
	noneAsNull bool

	optional  bool // field is Option[X] or *X
	isPointer bool // the optional representation is *X, not Option[X]
	elemType  reflect.Type

	flattenCodec *recordCodec

	readFn  func(bson.Value) (any, error)
	writeFn func(any) (bson.Value, error)
}

// recordCodec is a fully-described struct type's derivation plan. A
// recordCodec is inserted into engine.cache before its field list is
// populated, so a field that refers back to the same type (through a
// pointer — direct self-embedding wouldn't compile) resolves to this same
// pointer instead of recursing forever; by the time any read or write
// actually runs, every recordCodec reachable from the root type has a
// complete field list (§9, "recursive derivation").
type recordCodec struct {
	typ    reflect.Type
	fields []fieldDescription
}

// engine carries the Config and the in-progress/finished type graph for a
// single DeriveHandler or DeriveUnionHandler call. A fresh engine per call
// keeps one Config's derivation choices from leaking into another's, at
// the cost of repeating reflection work derivation already treats as
// off the hot path (§9).
type engine struct {
	cfg   *Config
	cache map[reflect.Type]*recordCodec
}

func newEngine(cfg *Config) *engine {
	return &engine{cfg: cfg, cache: map[reflect.Type]*recordCodec{}}
}

// describeRecord builds (or returns the cached, possibly still-filling-in)
// recordCodec for t.
func (e *engine) describeRecord(t reflect.Type) (*recordCodec, error) {
	if rc, ok := e.cache[t]; ok {
		return rc, nil
	}
	if t.Kind() != reflect.Struct {
		return nil, &bson.DerivationError{TypeName: t.String(), Reason: "not a struct"}
	}

	rc := &recordCodec{typ: t}
	e.cache[t] = rc

	seen := map[string]bool{}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue // unexported: invisible to reflection, can't be derived
		}
		tag := parseFieldTag(sf)

		if tag.skip || e.cfg.isIgnored(t, sf.Name) {
			rc.fields = append(rc.fields, fieldDescription{index: i, ignore: true})
			continue
		}

		name := e.cfg.effectiveName(t, sf.Name, tag)
		if seen[name] {
			return nil, &bson.DerivationError{TypeName: t.String(), Reason: fmt.Sprintf("duplicate wire name %q after naming policy", name)}
		}
		seen[name] = true

		fd := fieldDescription{name: name, index: i, elemType: sf.Type}
		fd.noneAsNull = tag.noneAsNull || e.cfg.isNoneAsNull(t, sf.Name)

		switch {
		case isOptionType(sf.Type):
			fd.optional = true
			fd.elemType = sf.Type.Field(0).Type // Option[X].Value
		case sf.Type.Kind() == reflect.Ptr:
			fd.optional = true
			fd.isPointer = true
			fd.elemType = sf.Type.Elem()
		}

		if tag.flatten || e.cfg.isFlattened(t, sf.Name) {
			// Checked before the optional/pointer rejection below: a
			// self-referential field can only exist in Go as a pointer
			// (a direct value embedding wouldn't compile), so this is
			// the only shape "flatten a recursive field" can take here.
			if fd.elemType == t {
				return nil, &bson.DerivationError{TypeName: t.String(), Reason: fmt.Sprintf("field %q: cannot flatten a recursive field", sf.Name)}
			}
			if fd.optional {
				return nil, &bson.DerivationError{TypeName: t.String(), Reason: fmt.Sprintf("field %q: flatten requires a plain record field, not Option/pointer", sf.Name)}
			}
			if fd.elemType.Kind() != reflect.Struct {
				return nil, &bson.DerivationError{TypeName: t.String(), Reason: fmt.Sprintf("field %q: flatten requires a record-typed field", sf.Name)}
			}
			nested, err := e.describeRecord(fd.elemType)
			if err != nil {
				return nil, err
			}
			fd.flatten = true
			fd.flattenCodec = nested
		}

		rc.fields = append(rc.fields, fd)
	}

	return rc, nil
}

// resolveAll fills in every field's read/write closures once the whole
// type graph reachable from the root has been discovered. A field's
// closure is a method value bound to a *recordCodec pointer, not a copy
// of its (possibly still incomplete) field list, so it only needs that
// pointer's fields to be complete by the time an actual read or write
// runs — long after resolveAll returns. Resolving one type's fields can
// itself grow e.cache (automatic materialization calling describeRecord
// on a field type seen for the first time here), so this runs to a fixed
// point over "process every type currently in the cache, repeat if new
// ones appeared" rather than a single range, which would not reliably
// visit types inserted mid-iteration.
func (e *engine) resolveAll() error {
	processed := map[reflect.Type]bool{}
	for {
		progress := false
		for typ, rc := range e.cache {
			if processed[typ] {
				continue
			}
			processed[typ] = true
			progress = true

			for i := range rc.fields {
				fd := &rc.fields[i]
				if fd.ignore || fd.flatten {
					continue
				}
				read, write, err := e.resolveElem(fd.elemType)
				if err != nil {
					return &bson.DerivationError{TypeName: rc.typ.String(), Reason: fmt.Sprintf("field %q: %s", fd.name, err)}
				}
				fd.readFn = read
				fd.writeFn = write
			}
		}
		if !progress {
			return nil
		}
	}
}

// resolveElem finds (or builds) the type-erased read/write pair for t: a
// registered Handler first, then — for structs, slices, and string-keyed
// maps — a recursively derived or assembled one.
func (e *engine) resolveElem(t reflect.Type) (func(bson.Value) (any, error), func(any) (bson.Value, error), error) {
	if read, write, ok := e.cfg.registryOrDefault().LookupAny(t); ok {
		return read, write, nil
	}

	switch t.Kind() {
	case reflect.Struct:
		if rc, ok := e.cache[t]; ok {
			return rc.readAny, rc.writeAny, nil
		}
		if !e.cfg.automaticMaterialization {
			return nil, nil, &bson.DerivationError{TypeName: t.String(), Reason: "no Handler registered; enable WithAutomaticMaterialization or register one explicitly"}
		}
		rc, err := e.describeRecord(t)
		if err != nil {
			return nil, nil, err
		}
		return rc.readAny, rc.writeAny, nil

	case reflect.Slice:
		elemRead, elemWrite, err := e.resolveElem(t.Elem())
		if err != nil {
			return nil, nil, err
		}
		return sliceReadAny(t.Elem(), elemRead), sliceWriteAny(elemWrite), nil

	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, nil, &bson.DerivationError{TypeName: t.String(), Reason: "map key must be string-kinded"}
		}
		elemRead, elemWrite, err := e.resolveElem(t.Elem())
		if err != nil {
			return nil, nil, err
		}
		return mapReadAny(t, elemRead), mapWriteAny(elemWrite), nil

	default:
		return nil, nil, &bson.DerivationError{TypeName: t.String(), Reason: "no Handler available for " + t.String()}
	}
}

// isOptionType reports whether t is an instantiation of bsoncodec.Option.
// Go's reflect.Type.String() renders a generic instantiation as
// "pkg.Name[args]", which is the only structural signal available short
// of importing bsoncodec's Option type parameter directly — this also
// shape-checks the Value/Present fields so an unrelated two-field struct
// never gets mistaken for one.
func isOptionType(t reflect.Type) bool {
	return t.Kind() == reflect.Struct &&
		t.NumField() == 2 &&
		t.Field(0).Name == "Value" &&
		t.Field(1).Name == "Present" &&
		t.Field(1).Type.Kind() == reflect.Bool &&
		strings.HasPrefix(t.String(), "bsoncodec.Option[")
}

// optionalPresent reports whether fv (an Option[X] or *X field value)
// carries a value, and if so returns it unwrapped.
func optionalPresent(fd *fieldDescription, fv reflect.Value) (bool, reflect.Value) {
	if fd.isPointer {
		if fv.IsNil() {
			return false, reflect.Value{}
		}
		return true, fv.Elem()
	}
	if !fv.FieldByName("Present").Bool() {
		return false, reflect.Value{}
	}
	return true, fv.FieldByName("Value")
}

func setAbsentOptional(fv reflect.Value) {
	fv.Set(reflect.Zero(fv.Type()))
}

func setPresentOptional(fd *fieldDescription, fv reflect.Value, inner any) {
	if fd.isPointer {
		p := reflect.New(fv.Type().Elem())
		p.Elem().Set(reflect.ValueOf(inner))
		fv.Set(p)
		return
	}
	ov := reflect.New(fv.Type()).Elem()
	ov.FieldByName("Value").Set(reflect.ValueOf(inner))
	ov.FieldByName("Present").SetBool(true)
	fv.Set(ov)
}

// writeDocValue encodes sv (a reflect.Value of rc.typ) into a Document.
func (rc *recordCodec) writeDocValue(sv reflect.Value) (bson.Document, error) {
	var elems []bson.Element
	for i := range rc.fields {
		fd := &rc.fields[i]
		if fd.ignore {
			continue
		}
		fv := sv.Field(fd.index)

		if fd.flatten {
			nested, err := fd.flattenCodec.writeDocValue(fv)
			if err != nil {
				return bson.Document{}, bson.WrapPath(fmt.Sprintf("field %d", fd.index), err)
			}
			elems = append(elems, nested.Elements()...)
			continue
		}

		if fd.optional {
			present, inner := optionalPresent(fd, fv)
			if !present {
				if fd.noneAsNull {
					elems = append(elems, bson.NewElement(fd.name, bson.Null{}))
				}
				continue
			}
			v, err := fd.writeFn(inner.Interface())
			if err != nil {
				return bson.Document{}, bson.WrapPath(fd.name, err)
			}
			elems = append(elems, bson.NewElement(fd.name, v))
			continue
		}

		v, err := fd.writeFn(fv.Interface())
		if err != nil {
			return bson.Document{}, bson.WrapPath(fd.name, err)
		}
		elems = append(elems, bson.NewElement(fd.name, v))
	}
	return bson.NewDocument(elems...), nil
}

// readDocValue decodes d into a new reflect.Value of rc.typ.
func (rc *recordCodec) readDocValue(d bson.Document) (reflect.Value, error) {
	sv := reflect.New(rc.typ).Elem()
	for i := range rc.fields {
		fd := &rc.fields[i]
		if fd.ignore {
			continue
		}

		if fd.flatten {
			nv, err := fd.flattenCodec.readDocValue(d)
			if err != nil {
				return reflect.Value{}, bson.WrapPath(fmt.Sprintf("field %d", fd.index), err)
			}
			sv.Field(fd.index).Set(nv)
			continue
		}

		val, ok := d.Get(fd.name)
		_, isNull := val.(bson.Null)

		if fd.optional {
			if !ok || isNull {
				setAbsentOptional(sv.Field(fd.index))
				continue
			}
			inner, err := fd.readFn(val)
			if err != nil {
				return reflect.Value{}, bson.WrapPath(fd.name, err)
			}
			setPresentOptional(fd, sv.Field(fd.index), inner)
			continue
		}

		if !ok {
			return reflect.Value{}, bson.WrapPath(fd.name, &bson.ValueNotFoundError{Path: fd.name})
		}
		t, err := fd.readFn(val)
		if err != nil {
			return reflect.Value{}, bson.WrapPath(fd.name, err)
		}
		sv.Field(fd.index).Set(reflect.ValueOf(t))
	}
	return sv, nil
}

// readAny/writeAny are the type-erased entry points resolveElem hands out
// for a struct-typed field whose own value is itself a derived record.
func (rc *recordCodec) readAny(v bson.Value) (any, error) {
	d, ok := v.(bson.Document)
	if !ok {
		return nil, &bson.TypeMismatchError{Expected: bson.TypeEmbeddedDocument, Actual: v.Type()}
	}
	sv, err := rc.readDocValue(d)
	if err != nil {
		return nil, err
	}
	return sv.Interface(), nil
}

func (rc *recordCodec) writeAny(a any) (bson.Value, error) {
	d, err := rc.writeDocValue(reflect.ValueOf(a))
	if err != nil {
		return nil, err
	}
	return d, nil
}
