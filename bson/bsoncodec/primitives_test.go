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

func TestInt32HandlerRoundTrip(t *testing.T) {
	h := Int32Handler()
	v, err := h.WriteTry(42)
	require.NoError(t, err)
	got, err := h.ReadTry(v)
	require.NoError(t, err)
	require.Equal(t, int32(42), got)
}

func TestInt32ReaderRejectsNonWholeDouble(t *testing.T) {
	_, err := Int32Reader().ReadTry(bson.Double(2.5))
	require.Error(t, err)
}

func TestInt32ReaderAcceptsWholeDouble(t *testing.T) {
	v, err := Int32Reader().ReadTry(bson.Double(2.0))
	require.NoError(t, err)
	require.Equal(t, int32(2), v)
}

func TestInt64HandlerAcceptsDateTimeOnlyForInt64NotInt32(t *testing.T) {
	_, err := Int32Reader().ReadTry(bson.DateTime(123))
	require.Error(t, err, "DateTime widens only to Int64, never to Int32 (§3)")

	v, err := Int64Reader().ReadTry(bson.DateTime(123))
	require.NoError(t, err)
	require.Equal(t, int64(123), v)
}

func TestIntHandlerRoundTrip(t *testing.T) {
	h := IntHandler()
	v, err := h.WriteTry(100)
	require.NoError(t, err)
	got, err := h.ReadTry(v)
	require.NoError(t, err)
	require.Equal(t, 100, got)
}

func TestFloat64HandlerRoundTrip(t *testing.T) {
	h := Float64Handler()
	v, err := h.WriteTry(3.25)
	require.NoError(t, err)
	got, err := h.ReadTry(v)
	require.NoError(t, err)
	require.Equal(t, 3.25, got)
}

func TestBoolHandlerNumericWidening(t *testing.T) {
	r := BoolReader()
	v, err := r.ReadTry(bson.Int32(1))
	require.NoError(t, err)
	require.True(t, v)

	v, err = r.ReadTry(bson.Int32(0))
	require.NoError(t, err)
	require.False(t, v)

	v, err = r.ReadTry(bson.Null{})
	require.NoError(t, err)
	require.False(t, v)
}

func TestStringHandlerRoundTrip(t *testing.T) {
	h := StringHandler()
	v, err := h.WriteTry("hai")
	require.NoError(t, err)
	got, err := h.ReadTry(v)
	require.NoError(t, err)
	require.Equal(t, "hai", got)
}

func TestObjectIDHandlerRoundTrip(t *testing.T) {
	h := ObjectIDHandler()
	id := bson.NewObjectID()
	v, err := h.WriteTry(id)
	require.NoError(t, err)
	got, err := h.ReadTry(v)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestDecimal128HandlerRoundTrip(t *testing.T) {
	h := Decimal128Handler()
	d, err := bson.ParseDecimal128("3.50")
	require.NoError(t, err)
	v, err := h.WriteTry(d)
	require.NoError(t, err)
	got, err := h.ReadTry(v)
	require.NoError(t, err)
	require.Equal(t, d, got)
}
