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

func TestDefaultRegistryResolvesBuiltins(t *testing.T) {
	reg := DefaultRegistry()

	h, ok := LookupHandler[int32](reg)
	require.True(t, ok)
	v, err := h.WriteTry(5)
	require.NoError(t, err)
	require.Equal(t, bson.Int32(5), v)

	_, ok = LookupHandler[string](reg)
	require.True(t, ok)
}

func TestRegistryLookupMissingType(t *testing.T) {
	reg := NewRegistry()
	_, ok := LookupHandler[int32](reg)
	require.False(t, ok)
}

func TestRegisterHandlerOverwrites(t *testing.T) {
	reg := NewRegistry()
	RegisterHandler[int32](reg, Int32Handler())

	custom := NewHandler[int32](
		FuncReader[int32](func(bson.Value) (int32, error) { return 99, nil }),
		Int32Writer(),
	)
	RegisterHandler[int32](reg, custom)

	h, ok := LookupHandler[int32](reg)
	require.True(t, ok)
	v, err := h.ReadTry(bson.Int32(1))
	require.NoError(t, err)
	require.Equal(t, int32(99), v)
}
