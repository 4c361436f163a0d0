// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsoncodec

import (
	"testing"

	"github.com/ornicar/ReactiveMongo-BSON/bson"
	"github.com/stretchr/testify/require"
)

func TestReadOptAndOrElse(t *testing.T) {
	r := Int32Reader()

	v, ok := ReadOpt[int32](r, bson.Int32(9))
	require.True(t, ok)
	require.Equal(t, int32(9), v)

	_, ok = ReadOpt[int32](r, bson.String("x"))
	require.False(t, ok)

	require.Equal(t, int32(9), ReadOrElse[int32](r, bson.Int32(9), -1))
	require.Equal(t, int32(-1), ReadOrElse[int32](r, bson.String("x"), -1))
}

func TestMapCombinator(t *testing.T) {
	r := Map[int32, string](Int32Reader(), func(i int32) string {
		if i > 0 {
			return "positive"
		}
		return "non-positive"
	})
	s, err := r.ReadTry(bson.Int32(5))
	require.NoError(t, err)
	require.Equal(t, "positive", s)
}

func TestAfterReadPropagatesFailure(t *testing.T) {
	r := AfterRead[int32, int32](Int32Reader(), func(i int32) (int32, error) {
		if i < 0 {
			return 0, &bson.DecodeFailureError{Reason: "must be non-negative"}
		}
		return i, nil
	})
	_, err := r.ReadTry(bson.Int32(-1))
	require.Error(t, err)

	v, err := r.ReadTry(bson.Int32(1))
	require.NoError(t, err)
	require.Equal(t, int32(1), v)
}

func TestCollectRejectsPredicateFailure(t *testing.T) {
	r := Collect[int32, int32](Int32Reader(), func(i int32) (int32, bool) {
		return i, i%2 == 0
	})
	_, err := r.ReadTry(bson.Int32(3))
	require.Error(t, err)

	v, err := r.ReadTry(bson.Int32(4))
	require.NoError(t, err)
	require.Equal(t, int32(4), v)
}

func TestWidenUpcastsResultType(t *testing.T) {
	r := Widen[int32, int64](Int32Reader(), func(i int32) int64 { return int64(i) })
	v, err := r.ReadTry(bson.Int32(7))
	require.NoError(t, err)
	require.Equal(t, int64(7), v)
}

func TestBeforeReadTransformsInput(t *testing.T) {
	r := BeforeRead[int32](Int32Reader(), func(v bson.Value) bson.Value {
		if _, ok := v.(bson.Null); ok {
			return bson.Int32(0)
		}
		return v
	})
	v, err := r.ReadTry(bson.Null{})
	require.NoError(t, err)
	require.Equal(t, int32(0), v)
}

func TestReaderTypeMismatch(t *testing.T) {
	_, err := StringReader().ReadTry(bson.Int32(1))
	require.Error(t, err)
	var mismatch *bson.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
}
