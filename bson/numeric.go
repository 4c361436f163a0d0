// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

import "math"

// NumberLike is satisfied by every BSON variant that participates in the
// numeric coercion lattice (§3, L2): Double, Int32, Int64, Decimal128,
// DateTime, and Timestamp.
type NumberLike interface {
	Value
	numberLike()
}

func (Double) numberLike()     {}
func (Int32) numberLike()      {}
func (Int64) numberLike()      {}
func (Decimal128) numberLike() {}
func (DateTime) numberLike()   {}
func (Timestamp) numberLike()  {}

// BooleanLike is satisfied by every BSON variant with a well-defined
// boolean view (§4.2): Int32, Int64, Double, Decimal128, Boolean, Null,
// Undefined.
type BooleanLike interface {
	Value
	booleanLike()
}

func (Int32) booleanLike()      {}
func (Int64) booleanLike()      {}
func (Double) booleanLike()     {}
func (Decimal128) booleanLike() {}
func (Boolean) booleanLike()    {}
func (Null) booleanLike()       {}
func (Undefined) booleanLike()  {}

// ToBoolean implements the BooleanLike view (§3): numbers are true iff
// non-zero, undefined/null are false, booleans are themselves.
func ToBoolean(v BooleanLike) bool {
	switch n := v.(type) {
	case Int32:
		return n != 0
	case Int64:
		return n != 0
	case Double:
		return n != 0
	case Decimal128:
		return !(n.h == 0 && n.l == 0) && !(n.IsNaN())
	case Boolean:
		return bool(n)
	case Null, Undefined:
		return false
	default:
		return false
	}
}

// ToInt32 coerces v to an Int32 iff the value is exactly representable:
// whole and in Int32's range (§3, "numeric coercion lattice").
func ToInt32(v NumberLike) (int32, bool) {
	switch n := v.(type) {
	case Int32:
		return int32(n), true
	case Int64:
		if int64(int32(n)) == int64(n) {
			return int32(n), true
		}
	case Double:
		if isWholeInRange(float64(n), math.MinInt32, math.MaxInt32) {
			return int32(n), true
		}
	case Decimal128:
		if f, ok := n.toFloat64(); ok && isWholeInRange(f, math.MinInt32, math.MaxInt32) {
			return int32(f), true
		}
	}
	return 0, false
}

// ToInt64 coerces v to an Int64 iff the value is exactly representable.
// DateTime and Timestamp only ever widen to Int64, never to Int32 (§3).
func ToInt64(v NumberLike) (int64, bool) {
	switch n := v.(type) {
	case Int32:
		return int64(n), true
	case Int64:
		return int64(n), true
	case DateTime:
		return int64(n), true
	case Timestamp:
		return int64(n.T)<<32 | int64(n.I), true
	case Double:
		if isWholeInRange(float64(n), math.MinInt64, math.MaxInt64) && float64(int64(n)) == float64(n) {
			return int64(n), true
		}
	case Decimal128:
		if f, ok := n.toFloat64(); ok && isWholeInRange(f, math.MinInt64, math.MaxInt64) {
			return int64(f), true
		}
	}
	return 0, false
}

// ToFloat32 coerces v to a float32 iff it is exactly representable within
// float32's finite range.
func ToFloat32(v NumberLike) (float32, bool) {
	f, ok := ToFloat64(v)
	if !ok {
		return 0, false
	}
	f32 := float32(f)
	if float64(f32) != f {
		return 0, false
	}
	return f32, true
}

// ToFloat64 coerces v to a float64. Decimal128 only succeeds when
// IsDecimalDouble holds (§3).
func ToFloat64(v NumberLike) (float64, bool) {
	switch n := v.(type) {
	case Int32:
		return float64(n), true
	case Int64:
		f := float64(n)
		if int64(f) != int64(n) {
			return 0, false
		}
		return f, true
	case Double:
		return float64(n), true
	case Decimal128:
		return n.toFloat64()
	}
	return 0, false
}

// ToDecimal128 coerces v to a Decimal128. Int32, Int64, and Decimal128
// convert exactly; Double converts through its decimal string form.
func ToDecimal128(v NumberLike) (Decimal128, bool) {
	switch n := v.(type) {
	case Decimal128:
		return n, true
	case Int32:
		d, ok := ParseDecimal128FromBigInt(bigFromInt64(int64(n)), 0)
		return d, ok
	case Int64:
		d, ok := ParseDecimal128FromBigInt(bigFromInt64(int64(n)), 0)
		return d, ok
	case Double:
		d, err := ParseDecimal128(formatFloatShortest(float64(n)))
		return d, err == nil
	}
	return Decimal128{}, false
}

func isWholeInRange(f float64, min, max float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	if f != math.Trunc(f) {
		return false
	}
	return f >= min && f <= max
}
