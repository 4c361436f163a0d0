// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

// Document is the BSON embedded-document variant (tag 0x03): an
// insertion-ordered list of named elements (§3, §4.1). Documents are
// immutable; every mutating-looking method returns a new Document.
//
// A strict Document additionally guarantees at most one element per name;
// Append/Concat/RemoveKeys on a strict Document preserve that invariant by
// replacing the prior element in place rather than appending a duplicate
// (§3, GLOSSARY "strict document").
type Document struct {
	elements []Element
	strict   bool
}

// NewDocument builds a (non-strict) Document preserving duplicate names and
// insertion order, the way the teacher's bson.NewDocument(elems...) does
// for its Append-built documents.
func NewDocument(elems ...Element) Document {
	cp := make([]Element, len(elems))
	copy(cp, elems)
	return Document{elements: cp}
}

// NewStrictDocument builds a strict Document: later elements with a name
// already seen replace the earlier one in place, so relative order follows
// first appearance (§3).
func NewStrictDocument(elems ...Element) Document {
	d := Document{strict: true}
	return d.AppendElements(elems)
}

func (d Document) Type() Type      { return TypeEmbeddedDocument }
func (Document) value()            {}

// ByteSize returns the exact serialized size: a 4-byte total length, the
// encoded elements, and a trailing null (§3).
func (d Document) ByteSize() int32 {
	var total int32 = 5
	for _, e := range d.elements {
		total += e.byteSize()
	}
	return total
}

// IsStrict reports whether d enforces name uniqueness.
func (d Document) IsStrict() bool { return d.strict }

// Size returns the number of elements, counting duplicate names in a
// non-strict Document individually.
func (d Document) Size() int { return len(d.elements) }

// IsEmpty reports whether the document has no elements.
func (d Document) IsEmpty() bool { return len(d.elements) == 0 }

// Elements returns the ordered element list. The returned slice is a copy;
// mutating it does not affect d.
func (d Document) Elements() []Element {
	cp := make([]Element, len(d.elements))
	copy(cp, d.elements)
	return cp
}

// HeadOption returns the first element, or false if the document is empty.
func (d Document) HeadOption() (Element, bool) {
	if len(d.elements) == 0 {
		return Element{}, false
	}
	return d.elements[0], true
}

// Contains reports whether name appears in the document.
func (d Document) Contains(name string) bool {
	for _, e := range d.elements {
		if e.Name == name {
			return true
		}
	}
	return false
}

// Get returns the value for name, scanning in order and returning the LAST
// matching element so that Get and ToMap agree on duplicate names (§3).
func (d Document) Get(name string) (Value, bool) {
	var (
		found Value
		ok    bool
	)
	for _, e := range d.elements {
		if e.Name == name {
			found, ok = e.Value, true
		}
	}
	return found, ok
}

// ToMap projects the document to a name->value map. If a name appears more
// than once, the LAST occurrence wins (§3).
func (d Document) ToMap() map[string]Value {
	m := make(map[string]Value, len(d.elements))
	for _, e := range d.elements {
		m[e.Name] = e.Value
	}
	return m
}

// Append returns a new Document with elems appended. On a strict Document,
// an element whose name already exists replaces the existing one in place
// instead of appending a duplicate.
func (d Document) Append(elems ...Element) Document {
	return d.AppendElements(elems)
}

// AppendElements is the named form of Append used by §4.1's operation list.
func (d Document) AppendElements(elems []Element) Document {
	if !d.strict {
		out := make([]Element, len(d.elements)+len(elems))
		n := copy(out, d.elements)
		copy(out[n:], elems)
		return Document{elements: out, strict: d.strict}
	}

	out := make([]Element, len(d.elements))
	copy(out, d.elements)
	index := make(map[string]int, len(out))
	for i, e := range out {
		index[e.Name] = i
	}
	for _, e := range elems {
		if i, ok := index[e.Name]; ok {
			out[i] = e
			continue
		}
		index[e.Name] = len(out)
		out = append(out, e)
	}
	return Document{elements: out, strict: true}
}

// Concat merges other's elements onto d's, subject to the same
// strict-replacement rule as AppendElements.
func (d Document) Concat(other Document) Document {
	return d.AppendElements(other.elements)
}

// RemoveKeys returns a new Document with every element named in keys
// removed.
func (d Document) RemoveKeys(keys ...string) Document {
	remove := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		remove[k] = struct{}{}
	}
	out := make([]Element, 0, len(d.elements))
	for _, e := range d.elements {
		if _, ok := remove[e.Name]; ok {
			continue
		}
		out = append(out, e)
	}
	return Document{elements: out, strict: d.strict}
}

// ElementAt returns the element at position index.
func (d Document) ElementAt(index int) (Element, bool) {
	if index < 0 || index >= len(d.elements) {
		return Element{}, false
	}
	return d.elements[index], true
}

// Equal reports whether d and other have the same name->value map,
// ignoring construction order and element duplication (§3, §8 property 3).
func (d Document) Equal(other Document) bool {
	a, b := d.ToMap(), other.ToMap()
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !ValuesEqual(av, bv) {
			return false
		}
	}
	return true
}

// Diff returns the keys present in d but absent (or mapped to a different
// value) in other, compared through ToMap, in no defined order. Grounded
// in the teacher's Document.Keys/Lookup idiom (SPEC_FULL.md).
func (d Document) Diff(other Document) []string {
	a, b := d.ToMap(), other.ToMap()
	var out []string
	for k, av := range a {
		if bv, ok := b[k]; !ok || !ValuesEqual(av, bv) {
			out = append(out, k)
		}
	}
	return out
}
