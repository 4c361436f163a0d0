// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsoncodec

import "github.com/ornicar/ReactiveMongo-BSON/bson"

// DocumentReader is the Document-specialized refinement of Reader: it may
// assume its input is already a bson.Document (§4.3). Derived record
// readers implement this directly rather than the more general Reader.
type DocumentReader[T any] interface {
	ReadDocumentTry(d bson.Document) (T, error)
}

// DocumentWriter is the Document-specialized refinement of Writer.
type DocumentWriter[T any] interface {
	WriteDocumentTry(t T) (bson.Document, error)
}

// DocumentHandler pairs a DocumentReader and DocumentWriter for the same
// T. bsonderive's record and sum derivation produce these.
type DocumentHandler[T any] struct {
	DocumentReader[T]
	DocumentWriter[T]
}

func NewDocumentHandler[T any](r DocumentReader[T], w DocumentWriter[T]) DocumentHandler[T] {
	return DocumentHandler[T]{DocumentReader: r, DocumentWriter: w}
}

type funcDocumentReader[T any] func(bson.Document) (T, error)

func (f funcDocumentReader[T]) ReadDocumentTry(d bson.Document) (T, error) { return f(d) }

type funcDocumentWriter[T any] func(T) (bson.Document, error)

func (f funcDocumentWriter[T]) WriteDocumentTry(t T) (bson.Document, error) { return f(t) }

// ToReader widens a DocumentReader into a plain Reader: reading from a
// non-Document Value fails with TypeMismatchError.
func ToReader[T any](dr DocumentReader[T]) Reader[T] {
	return FuncReader[T](func(v bson.Value) (T, error) {
		d, ok := v.(bson.Document)
		if !ok {
			var zero T
			return zero, &bson.TypeMismatchError{Expected: bson.TypeEmbeddedDocument, Actual: v.Type()}
		}
		return dr.ReadDocumentTry(d)
	})
}

// ToWriter widens a DocumentWriter into a plain Writer.
func ToWriter[T any](dw DocumentWriter[T]) Writer[T] {
	return FuncWriter[T](func(t T) (bson.Value, error) {
		d, err := dw.WriteDocumentTry(t)
		if err != nil {
			return nil, err
		}
		return d, nil
	})
}

// ToHandler widens a DocumentHandler into a plain value Handler.
func ToHandler[T any](dh DocumentHandler[T]) Handler[T] {
	return NewHandler[T](ToReader[T](dh.DocumentReader), ToWriter[T](dh.DocumentWriter))
}
