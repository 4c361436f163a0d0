// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

// Value is the closed sum of BSON value variants (§3). Every concrete
// variant type in this package implements it; the unexported value()
// method keeps the sum closed to this package the way a sealed trait would
// in a language with sum types (§9, "ad-hoc polymorphism over sum shapes").
//
// A Value is immutable once constructed; every Document/Array operation
// that appears to mutate one instead returns a new Value.
type Value interface {
	// Type returns the 1-byte wire tag for this variant.
	Type() Type
	// ByteSize returns the exact number of bytes the standard BSON
	// serializer would emit for this value (§3, §8 property 2).
	ByteSize() int32

	value()
}

// Double is the BSON double variant (tag 0x01).
type Double float64

func (Double) Type() Type      { return TypeDouble }
func (Double) ByteSize() int32 { return 8 }
func (Double) value()          {}

// String is the BSON string variant (tag 0x02).
type String string

func (s String) Type() Type      { return TypeString }
func (s String) ByteSize() int32 { return 5 + int32(len(s)) }
func (String) value()            {}

// Binary is the BSON binary variant (tag 0x05): a subtype byte plus opaque
// data.
type Binary struct {
	Subtype byte
	Data    []byte
}

func (Binary) Type() Type          { return TypeBinary }
func (b Binary) ByteSize() int32   { return 5 + int32(len(b.Data)) }
func (Binary) value()              {}
func (b Binary) IsZero() bool      { return b.Subtype == 0 && len(b.Data) == 0 }
func (a Binary) Equal(b Binary) bool {
	if a.Subtype != b.Subtype || len(a.Data) != len(b.Data) {
		return false
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			return false
		}
	}
	return true
}

// Undefined is the BSON undefined variant (tag 0x06). Deprecated by the
// BSON spec but kept for wire compatibility (§3).
type Undefined struct{}

func (Undefined) Type() Type      { return TypeUndefined }
func (Undefined) ByteSize() int32 { return 0 }
func (Undefined) value()          {}

// Boolean is the BSON boolean variant (tag 0x08).
type Boolean bool

func (Boolean) Type() Type      { return TypeBoolean }
func (Boolean) ByteSize() int32 { return 1 }
func (Boolean) value()          {}

// DateTime is the BSON UTC datetime variant (tag 0x09): signed milliseconds
// since the Unix epoch.
type DateTime int64

func (DateTime) Type() Type      { return TypeDateTime }
func (DateTime) ByteSize() int32 { return 8 }
func (DateTime) value()          {}

// Null is the BSON null variant (tag 0x0A).
type Null struct{}

func (Null) Type() Type      { return TypeNull }
func (Null) ByteSize() int32 { return 0 }
func (Null) value()          {}

// Regex is the BSON regular expression variant (tag 0x0B).
type Regex struct {
	Pattern string
	Options string
}

func (Regex) Type() Type      { return TypeRegex }
func (r Regex) ByteSize() int32 {
	return int32(len(r.Pattern)) + int32(len(r.Options)) + 2
}
func (Regex) value()      {}
func (r Regex) IsZero() bool { return r.Pattern == "" && r.Options == "" }
func (r Regex) Equal(other Regex) bool {
	return r.Pattern == other.Pattern && r.Options == other.Options
}

// JavaScript is the BSON JavaScript-code variant (tag 0x0D).
type JavaScript string

func (JavaScript) Type() Type      { return TypeJavaScript }
func (j JavaScript) ByteSize() int32 { return 5 + int32(len(j)) }
func (JavaScript) value()          {}

// Symbol is the BSON symbol variant (tag 0x0E), retained for wire
// compatibility with drivers that still emit it.
type Symbol string

func (Symbol) Type() Type      { return TypeSymbol }
func (s Symbol) ByteSize() int32 { return 5 + int32(len(s)) }
func (Symbol) value()          {}

// CodeWithScope is the BSON JavaScript-with-scope variant (tag 0x0F): source
// text paired with a Document giving its closure scope.
type CodeWithScope struct {
	Code  string
	Scope Document
}

func (CodeWithScope) Type() Type { return TypeCodeWithScope }

// ByteSize follows the exact BSON wire layout: outer int32 total length (4),
// the code string encoded with its own length prefix and terminator
// (4+len(Code)+1), then the scope subdocument's bytes.
func (c CodeWithScope) ByteSize() int32 {
	return 4 + 5 + int32(len(c.Code)) + c.Scope.ByteSize()
}
func (CodeWithScope) value() {}

// Int32 is the BSON 32-bit integer variant (tag 0x10).
type Int32 int32

func (Int32) Type() Type      { return TypeInt32 }
func (Int32) ByteSize() int32 { return 4 }
func (Int32) value()          {}

// Timestamp is the BSON internal replication timestamp variant (tag 0x11):
// a packed 64-bit value with T (seconds) in the high 32 bits and I
// (ordinal) in the low 32 bits.
type Timestamp struct {
	T uint32
	I uint32
}

func (Timestamp) Type() Type      { return TypeTimestamp }
func (Timestamp) ByteSize() int32 { return 8 }
func (Timestamp) value()          {}
func (t Timestamp) IsZero() bool  { return t.T == 0 && t.I == 0 }

// CompareTimestamp orders two Timestamps first by T, then by I. It returns
// -1, 0, or 1 the way sort.Compare-family functions do.
func CompareTimestamp(t1, t2 Timestamp) int {
	switch {
	case t1.T > t2.T:
		return 1
	case t1.T < t2.T:
		return -1
	case t1.I > t2.I:
		return 1
	case t1.I < t2.I:
		return -1
	default:
		return 0
	}
}

// Int64 is the BSON 64-bit integer variant (tag 0x12).
type Int64 int64

func (Int64) Type() Type      { return TypeInt64 }
func (Int64) ByteSize() int32 { return 8 }
func (Int64) value()          {}

// MinKey is the BSON variant (tag 0xFF) that compares less than every other
// BSON value.
type MinKey struct{}

func (MinKey) Type() Type      { return TypeMinKey }
func (MinKey) ByteSize() int32 { return 0 }
func (MinKey) value()          {}

// MaxKey is the BSON variant (tag 0x7F) that compares greater than every
// other BSON value.
type MaxKey struct{}

func (MaxKey) Type() Type      { return TypeMaxKey }
func (MaxKey) ByteSize() int32 { return 0 }
func (MaxKey) value()          {}
