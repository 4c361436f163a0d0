// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

import (
	"math/big"
	"strconv"
)

func bigFromInt64(v int64) *big.Int {
	return big.NewInt(v)
}

func formatFloatShortest(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
