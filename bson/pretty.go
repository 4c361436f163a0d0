// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PrettyPrint renders v in the MongoDB-shell notation used for debugging
// (§4.1): ObjectId('...'), NumberLong(...), ISODate('...'), single-quoted
// strings with ' escaped. It is not part of the byte contract.
func PrettyPrint(v Value) string {
	var b strings.Builder
	writePretty(&b, v)
	return b.String()
}

func writePretty(b *strings.Builder, v Value) {
	switch val := v.(type) {
	case Double:
		fmt.Fprintf(b, "%v", float64(val))
	case String:
		writePrettyString(b, string(val))
	case Document:
		writePrettyDocument(b, val)
	case Array:
		writePrettyArray(b, val)
	case Binary:
		fmt.Fprintf(b, "BinData(%d,%q)", val.Subtype, base64.StdEncoding.EncodeToString(val.Data))
	case Undefined:
		b.WriteString("undefined")
	case ObjectID:
		fmt.Fprintf(b, "ObjectId('%s')", val.Hex())
	case Boolean:
		if val {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case DateTime:
		b.WriteString("ISODate('")
		b.WriteString(millisToISO(int64(val)))
		b.WriteString("')")
	case Null:
		b.WriteString("null")
	case Regex:
		fmt.Fprintf(b, "/%s/%s", val.Pattern, val.Options)
	case JavaScript:
		writePrettyString(b, string(val))
	case Symbol:
		writePrettyString(b, string(val))
	case CodeWithScope:
		b.WriteString("Code(")
		writePrettyString(b, val.Code)
		b.WriteString(", ")
		writePrettyDocument(b, val.Scope)
		b.WriteString(")")
	case Int32:
		b.WriteString(strconv.FormatInt(int64(val), 10))
	case Timestamp:
		fmt.Fprintf(b, "Timestamp(%d, %d)", val.T, val.I)
	case Int64:
		fmt.Fprintf(b, "NumberLong(%d)", int64(val))
	case Decimal128:
		fmt.Fprintf(b, "NumberDecimal('%s')", val.String())
	case MinKey:
		b.WriteString("MinKey")
	case MaxKey:
		b.WriteString("MaxKey")
	default:
		fmt.Fprintf(b, "%v", v)
	}
}

func writePrettyString(b *strings.Builder, s string) {
	b.WriteByte('\'')
	b.WriteString(strings.ReplaceAll(s, "'", "\\'"))
	b.WriteByte('\'')
}

func writePrettyDocument(b *strings.Builder, d Document) {
	b.WriteByte('{')
	for i, e := range d.elements {
		if i > 0 {
			b.WriteString(", ")
		}
		writePrettyString(b, e.Name)
		b.WriteString(": ")
		writePretty(b, e.Value)
	}
	b.WriteByte('}')
}

func writePrettyArray(b *strings.Builder, a Array) {
	b.WriteByte('[')
	for i, v := range a.values {
		if i > 0 {
			b.WriteString(", ")
		}
		writePretty(b, v)
	}
	b.WriteByte(']')
}

func millisToISO(millis int64) string {
	secs := millis / 1000
	rem := millis % 1000
	if rem < 0 {
		rem += 1000
		secs--
	}
	t := time.Unix(secs, rem*int64(time.Millisecond)).UTC()
	return t.Format("2006-01-02T15:04:05.000Z")
}
