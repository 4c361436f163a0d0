// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

// Type identifies the wire tag of a BSON value, as described in
// https://bsonspec.org/spec.html.
type Type byte

// BSON element types.
const (
	TypeDouble              Type = 0x01
	TypeString              Type = 0x02
	TypeEmbeddedDocument    Type = 0x03
	TypeArray               Type = 0x04
	TypeBinary              Type = 0x05
	TypeUndefined           Type = 0x06
	TypeObjectID            Type = 0x07
	TypeBoolean             Type = 0x08
	TypeDateTime            Type = 0x09
	TypeNull                Type = 0x0A
	TypeRegex               Type = 0x0B
	TypeJavaScript          Type = 0x0D
	TypeSymbol              Type = 0x0E
	TypeCodeWithScope       Type = 0x0F
	TypeInt32               Type = 0x10
	TypeTimestamp           Type = 0x11
	TypeInt64               Type = 0x12
	TypeDecimal128          Type = 0x13
	TypeMaxKey              Type = 0x7F
	TypeMinKey              Type = 0xFF
)

// IsValid reports whether t is one of the defined BSON type tags.
func (t Type) IsValid() bool {
	switch t {
	case TypeDouble, TypeString, TypeEmbeddedDocument, TypeArray, TypeBinary,
		TypeUndefined, TypeObjectID, TypeBoolean, TypeDateTime, TypeNull,
		TypeRegex, TypeJavaScript, TypeSymbol, TypeCodeWithScope, TypeInt32,
		TypeTimestamp, TypeInt64, TypeDecimal128, TypeMaxKey, TypeMinKey:
		return true
	default:
		return false
	}
}

// String returns the canonical BSON type name, matching the names used by
// MongoDB's $type query operator.
func (t Type) String() string {
	switch t {
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeEmbeddedDocument:
		return "embeddedDocument"
	case TypeArray:
		return "array"
	case TypeBinary:
		return "binData"
	case TypeUndefined:
		return "undefined"
	case TypeObjectID:
		return "objectID"
	case TypeBoolean:
		return "bool"
	case TypeDateTime:
		return "date"
	case TypeNull:
		return "null"
	case TypeRegex:
		return "regex"
	case TypeJavaScript:
		return "javascript"
	case TypeSymbol:
		return "symbol"
	case TypeCodeWithScope:
		return "javascriptWithScope"
	case TypeInt32:
		return "int"
	case TypeTimestamp:
		return "timestamp"
	case TypeInt64:
		return "long"
	case TypeDecimal128:
		return "decimal"
	case TypeMaxKey:
		return "maxKey"
	case TypeMinKey:
		return "minKey"
	default:
		return "invalid"
	}
}

// Binary subtypes, as described in https://bsonspec.org/spec.html.
const (
	BinaryGeneric     byte = 0x00
	BinaryFunction    byte = 0x01
	BinaryBinaryOld   byte = 0x02
	BinaryUUIDOld     byte = 0x03
	BinaryUUID        byte = 0x04
	BinaryMD5         byte = 0x05
	BinaryEncrypted   byte = 0x06
	BinaryUserDefined byte = 0x80
)
