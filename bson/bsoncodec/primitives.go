// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsoncodec

import (
	"math"

	"github.com/ornicar/ReactiveMongo-BSON/bson"
)

// Readers for primitives accept the permissive widening described in
// §4.3: any NumberLike variant decoding to an integral T succeeds iff it
// exactly represents T's value.

func Int32Reader() Reader[int32] {
	return FuncReader[int32](func(v bson.Value) (int32, error) {
		n, ok := v.(bson.NumberLike)
		if !ok {
			return 0, &bson.TypeMismatchError{Expected: bson.TypeInt32, Actual: v.Type()}
		}
		i, ok := bson.ToInt32(n)
		if !ok {
			return 0, &bson.DecodeFailureError{Reason: "value is not exactly representable as int32"}
		}
		return i, nil
	})
}

func Int32Writer() SafeWriter[int32] {
	return NewSafeWriter(func(i int32) bson.Value { return bson.Int32(i) })
}

// Int32Handler is the built-in Handler for int32 (§6).
func Int32Handler() Handler[int32] { return NewHandler[int32](Int32Reader(), Int32Writer()) }

func Int64Reader() Reader[int64] {
	return FuncReader[int64](func(v bson.Value) (int64, error) {
		n, ok := v.(bson.NumberLike)
		if !ok {
			return 0, &bson.TypeMismatchError{Expected: bson.TypeInt64, Actual: v.Type()}
		}
		i, ok := bson.ToInt64(n)
		if !ok {
			return 0, &bson.DecodeFailureError{Reason: "value is not exactly representable as int64"}
		}
		return i, nil
	})
}

func Int64Writer() SafeWriter[int64] {
	return NewSafeWriter(func(i int64) bson.Value { return bson.Int64(i) })
}

// Int64Handler is the built-in Handler for int64 (§6).
func Int64Handler() Handler[int64] { return NewHandler[int64](Int64Reader(), Int64Writer()) }

// IntHandler adapts Int64Handler to Go's native int, rejecting values
// outside the platform int range.
func IntHandler() Handler[int] {
	r := AfterRead[int64, int](Int64Reader(), func(i int64) (int, error) {
		if i > math.MaxInt || i < math.MinInt {
			return 0, &bson.DecodeFailureError{Reason: "value out of range for int"}
		}
		return int(i), nil
	})
	w := Contramap[int, int64](Int64Writer(), func(i int) int64 { return int64(i) })
	return NewHandler[int](r, w)
}

func Float64Reader() Reader[float64] {
	return FuncReader[float64](func(v bson.Value) (float64, error) {
		n, ok := v.(bson.NumberLike)
		if !ok {
			return 0, &bson.TypeMismatchError{Expected: bson.TypeDouble, Actual: v.Type()}
		}
		f, ok := bson.ToFloat64(n)
		if !ok {
			return 0, &bson.DecodeFailureError{Reason: "value is not exactly representable as float64"}
		}
		return f, nil
	})
}

func Float64Writer() SafeWriter[float64] {
	return NewSafeWriter(func(f float64) bson.Value { return bson.Double(f) })
}

// Float64Handler is the built-in Handler for float64 (§6).
func Float64Handler() Handler[float64] { return NewHandler[float64](Float64Reader(), Float64Writer()) }

func BoolReader() Reader[bool] {
	return FuncReader[bool](func(v bson.Value) (bool, error) {
		b, ok := v.(bson.BooleanLike)
		if !ok {
			return false, &bson.TypeMismatchError{Expected: bson.TypeBoolean, Actual: v.Type()}
		}
		return bson.ToBoolean(b), nil
	})
}

func BoolWriter() SafeWriter[bool] {
	return NewSafeWriter(func(b bool) bson.Value { return bson.Boolean(b) })
}

// BoolHandler is the built-in Handler for bool (§6).
func BoolHandler() Handler[bool] { return NewHandler[bool](BoolReader(), BoolWriter()) }

func StringReader() Reader[string] {
	return FuncReader[string](func(v bson.Value) (string, error) {
		s, ok := v.(bson.String)
		if !ok {
			return "", &bson.TypeMismatchError{Expected: bson.TypeString, Actual: v.Type()}
		}
		return string(s), nil
	})
}

func StringWriter() SafeWriter[string] {
	return NewSafeWriter(func(s string) bson.Value { return bson.String(s) })
}

// StringHandler is the built-in Handler for string (§6).
func StringHandler() Handler[string] { return NewHandler[string](StringReader(), StringWriter()) }

func ObjectIDReader() Reader[bson.ObjectID] {
	return FuncReader[bson.ObjectID](func(v bson.Value) (bson.ObjectID, error) {
		id, ok := v.(bson.ObjectID)
		if !ok {
			return bson.ObjectID{}, &bson.TypeMismatchError{Expected: bson.TypeObjectID, Actual: v.Type()}
		}
		return id, nil
	})
}

func ObjectIDWriter() SafeWriter[bson.ObjectID] {
	return NewSafeWriter(func(id bson.ObjectID) bson.Value { return id })
}

// ObjectIDHandler is the built-in Handler for bson.ObjectID (§6).
func ObjectIDHandler() Handler[bson.ObjectID] {
	return NewHandler[bson.ObjectID](ObjectIDReader(), ObjectIDWriter())
}

func Decimal128Reader() Reader[bson.Decimal128] {
	return FuncReader[bson.Decimal128](func(v bson.Value) (bson.Decimal128, error) {
		d, ok := v.(bson.Decimal128)
		if !ok {
			return bson.Decimal128{}, &bson.TypeMismatchError{Expected: bson.TypeDecimal128, Actual: v.Type()}
		}
		return d, nil
	})
}

func Decimal128Writer() SafeWriter[bson.Decimal128] {
	return NewSafeWriter(func(d bson.Decimal128) bson.Value { return d })
}

// Decimal128Handler is the built-in Handler for bson.Decimal128 (§6).
func Decimal128Handler() Handler[bson.Decimal128] {
	return NewHandler[bson.Decimal128](Decimal128Reader(), Decimal128Writer())
}
