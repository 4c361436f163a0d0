// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

// Element is a single (name, value) pair inside a Document (§4.1,
// GLOSSARY).
type Element struct {
	Name  string
	Value Value
}

// NewElement constructs an Element.
func NewElement(name string, v Value) Element {
	return Element{Name: name, Value: v}
}

// byteSize is the wire size of this element as it appears inside a document
// or array: the type tag, the cstring name, and the value itself.
func (e Element) byteSize() int32 {
	return 1 + int32(len(e.Name)) + 1 + e.Value.ByteSize()
}

// Opt builds the zero-or-one-element slice a producer yields for an
// optional field (§4.1): no element when present is false, one element
// named name carrying v otherwise. It is a standalone helper for building
// documents by hand; the bsonderive record writer applies the same
// "emits nothing on None" rule itself and does not call Opt.
func Opt(name string, v Value, present bool) []Element {
	if !present {
		return nil
	}
	return []Element{NewElement(name, v)}
}
