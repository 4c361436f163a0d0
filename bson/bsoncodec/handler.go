// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsoncodec

// Handler pairs a Reader and a Writer for the same T (§4.3, GLOSSARY
// "Handler"). Derivation always produces Handlers.
type Handler[T any] struct {
	Reader[T]
	Writer[T]
}

// NewHandler pairs r and w into a Handler.
func NewHandler[T any](r Reader[T], w Writer[T]) Handler[T] {
	return Handler[T]{Reader: r, Writer: w}
}
