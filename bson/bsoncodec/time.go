// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsoncodec

import (
	"time"

	"github.com/ornicar/ReactiveMongo-BSON/bson"
)

// TimeReader decodes a BSON DateTime as a UTC time.Time (§6, "common date
// types").
func TimeReader() Reader[time.Time] {
	return FuncReader[time.Time](func(v bson.Value) (time.Time, error) {
		dt, ok := v.(bson.DateTime)
		if !ok {
			return time.Time{}, &bson.TypeMismatchError{Expected: bson.TypeDateTime, Actual: v.Type()}
		}
		return time.UnixMilli(int64(dt)).UTC(), nil
	})
}

// TimeWriter encodes a time.Time as a BSON DateTime, truncating to
// millisecond precision the way the wire format requires.
func TimeWriter() SafeWriter[time.Time] {
	return NewSafeWriter(func(t time.Time) bson.Value { return bson.DateTime(t.UnixMilli()) })
}

// TimeHandler is the built-in Handler for time.Time (§6).
func TimeHandler() Handler[time.Time] { return NewHandler[time.Time](TimeReader(), TimeWriter()) }
