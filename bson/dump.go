// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

import "github.com/davecgh/go-spew/spew"

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump renders the Go-level structure of v using go-spew, recursing safely
// through cycles. It is a plain Go-value dump distinct from PrettyPrint's
// MongoDB-shell notation (SPEC_FULL.md DOMAIN STACK). It is a standalone
// debug helper; the derivation layer's error messages do not include it.
func Dump(v any) string {
	return dumpConfig.Sdump(v)
}
