// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonderive

import (
	"reflect"
	"testing"

	"github.com/ornicar/ReactiveMongo-BSON/bson"
	"github.com/stretchr/testify/require"
)

type shape interface{ isShape() }

type UA struct{ N int32 }
type UB struct{ S string }
type Marker struct{}

func (UA) isShape()     {}
func (UB) isShape()     {}
func (Marker) isShape() {}

// S5 ADT dispatch with custom discriminator.
func TestDeriveUnionHandlerCustomDiscriminator(t *testing.T) {
	cfg := NewConfig(WithDiscriminator("_type"), WithTypeNaming(SimpleNameNaming))
	h, err := DeriveUnionHandler[shape](cfg, UA{}, UB{})
	require.NoError(t, err)

	v, err := h.WriteTry(UA{N: 1})
	require.NoError(t, err)
	d := v.(bson.Document)
	tag, ok := d.Get("_type")
	require.True(t, ok)
	require.Equal(t, bson.String("ua"), tag)

	got, err := h.ReadTry(v)
	require.NoError(t, err)
	require.Equal(t, shape(UA{N: 1}), got)
}

func TestDeriveUnionHandlerUnknownDiscriminatorIsTypeMismatch(t *testing.T) {
	cfg := NewConfig(WithDiscriminator("_type"))
	h, err := DeriveUnionHandler[shape](cfg, UA{}, UB{})
	require.NoError(t, err)

	doc := bson.NewDocument(bson.NewElement("_type", bson.String("nope")))
	_, err = h.ReadTry(doc)
	require.Error(t, err)
	var mismatch *bson.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestDeriveUnionHandlerMissingDiscriminatorFails(t *testing.T) {
	cfg := NewConfig(WithDiscriminator("_type"))
	h, err := DeriveUnionHandler[shape](cfg, UA{}, UB{})
	require.NoError(t, err)

	doc := bson.NewDocument(bson.NewElement("n", bson.Int32(1)))
	_, err = h.ReadTry(doc)
	require.Error(t, err)
}

func TestDeriveUnionHandlerCollisionFails(t *testing.T) {
	collideNaming := CustomTypeNaming(func(reflect.Type) string { return "same" })
	cfg := NewConfig(WithTypeNaming(collideNaming))

	_, err := DeriveUnionHandler[shape](cfg, UA{}, UB{})
	require.Error(t, err)
	var derivationErr *bson.DerivationError
	require.ErrorAs(t, err, &derivationErr)
}

func TestDeriveSingletonVariant(t *testing.T) {
	cfg := NewConfig(WithDiscriminator("_type"))
	h, err := DeriveUnionHandler[shape](cfg, Marker{})
	require.NoError(t, err)

	v, err := h.WriteTry(Marker{})
	require.NoError(t, err)
	d := v.(bson.Document)
	require.Equal(t, 1, d.Size())

	got, err := h.ReadTry(v)
	require.NoError(t, err)
	require.Equal(t, shape(Marker{}), got)
}
