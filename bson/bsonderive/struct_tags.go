// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonderive

import (
	"reflect"
	"strings"
)

// fieldTag is the parsed form of a `bson:"..."` struct tag. Grounded on
// the teacher's parseStructTags, but with this layer's own flag
// vocabulary in place of the wire codec's omitempty/minsize/truncate/
// inline set: the annotations §4.4 names are @Key (the tag's leading
// name), @Flatten, @Ignore, and @NoneAsNull.
type fieldTag struct {
	name       string
	skip       bool
	flatten    bool
	noneAsNull bool
}

// parseFieldTag parses "bson:\"[name][,flatten][,ignore][,noneasnull]\"".
// A bare "-" is shorthand for ",ignore". A field with no bson tag at all
// gets a zero fieldTag, deferring entirely to Config's naming policy and
// per-type field options.
func parseFieldTag(sf reflect.StructField) fieldTag {
	tag, ok := sf.Tag.Lookup("bson")
	if !ok {
		return fieldTag{}
	}
	if tag == "-" {
		return fieldTag{skip: true}
	}
	var ft fieldTag
	for i, part := range strings.Split(tag, ",") {
		if i == 0 && part != "" {
			ft.name = part
			continue
		}
		switch part {
		case "flatten":
			ft.flatten = true
		case "ignore":
			ft.skip = true
		case "noneasnull":
			ft.noneAsNull = true
		}
	}
	return ft
}
