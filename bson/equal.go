// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

// ValuesEqual reports whether a and b are the same BSON value: documents
// compare by name-map (§3), arrays compare position-sensitively (§9), and
// every other variant compares structurally.
func ValuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch av := a.(type) {
	case Document:
		return av.Equal(b.(Document))
	case Array:
		return av.Equal(b.(Array))
	case Binary:
		return av.Equal(b.(Binary))
	case Regex:
		return av.Equal(b.(Regex))
	case CodeWithScope:
		bv := b.(CodeWithScope)
		return av.Code == bv.Code && av.Scope.Equal(bv.Scope)
	default:
		return a == b
	}
}
