// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsoncodec

import (
	"github.com/google/uuid"
	"github.com/ornicar/ReactiveMongo-BSON/bson"
)

// UUIDReader decodes a UUID carried as BSON Binary subtype 0x04 (§6,
// "UUID (via Binary subtype 4)").
func UUIDReader() Reader[uuid.UUID] {
	return FuncReader[uuid.UUID](func(v bson.Value) (uuid.UUID, error) {
		b, ok := v.(bson.Binary)
		if !ok || b.Subtype != bson.BinaryUUID {
			return uuid.UUID{}, &bson.TypeMismatchError{Expected: bson.TypeBinary, Actual: v.Type()}
		}
		id, err := uuid.FromBytes(b.Data)
		if err != nil {
			return uuid.UUID{}, &bson.DecodeFailureError{Reason: err.Error()}
		}
		return id, nil
	})
}

// UUIDWriter encodes a UUID as BSON Binary subtype 0x04.
func UUIDWriter() SafeWriter[uuid.UUID] {
	return NewSafeWriter(func(id uuid.UUID) bson.Value {
		data, _ := id.MarshalBinary()
		return bson.Binary{Subtype: bson.BinaryUUID, Data: data}
	})
}

// UUIDHandler is the built-in Handler for uuid.UUID (§6).
func UUIDHandler() Handler[uuid.UUID] { return NewHandler[uuid.UUID](UUIDReader(), UUIDWriter()) }
