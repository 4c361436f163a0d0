// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonderive

import (
	"reflect"
	"strings"
	"unicode"
)

// FieldNaming maps a struct field's canonical (lowerCamel) name to its
// wire name (§4.4, "field naming policies"). canonicalFieldName produces
// the input: Go requires exported fields for reflection to see them at
// all, so a policy here always receives the Go field name with its first
// rune lowercased, e.g. "FirstName" arrives as "firstName".
type FieldNaming func(string) string

// IdentityNaming leaves the canonical name unchanged.
func IdentityNaming(name string) string { return name }

// SnakeCaseNaming converts "firstName" to "first_name": lowercase, with
// an underscore inserted before every uppercase letter that follows a
// lowercase letter or digit.
func SnakeCaseNaming(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// PascalCaseNaming uppercases the first letter and leaves the rest
// untouched: "firstName" becomes "FirstName".
func PascalCaseNaming(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// CustomNaming adapts an arbitrary function to FieldNaming.
func CustomNaming(f func(string) string) FieldNaming { return FieldNaming(f) }

// canonicalFieldName undoes Go's export-capitalization requirement so
// naming policies see the same lowerCamel starting point the spec's
// examples assume.
func canonicalFieldName(goName string) string {
	if goName == "" {
		return goName
	}
	r := []rune(goName)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// TypeNaming maps a variant's reflect.Type to the discriminator value
// written for it (§4.4, "discriminator-based ADT dispatch").
type TypeNaming func(reflect.Type) string

// SimpleNameNaming lowercases the type's unqualified name: "UA" becomes
// "ua".
func SimpleNameNaming(t reflect.Type) string { return strings.ToLower(t.Name()) }

// FullNameNaming lowercases the type's package-qualified name.
func FullNameNaming(t reflect.Type) string {
	return strings.ToLower(t.PkgPath() + "." + t.Name())
}

// CustomTypeNaming adapts an arbitrary function to TypeNaming.
func CustomTypeNaming(f func(reflect.Type) string) TypeNaming { return TypeNaming(f) }
