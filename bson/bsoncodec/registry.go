// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsoncodec

import (
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ornicar/ReactiveMongo-BSON/bson"
)

// Registry is a reflect.Type-keyed store of Handlers. bsonderive consults
// it for "automatic materialization" (§4.4): when generic-record
// derivation needs a sub-handler for a field type it was not given one
// for explicitly, it looks the type up here instead of failing.
//
// Grounded on the teacher's bson/bsoncodec/registry.go type-keyed
// dictionary, generalized from its interface{}-typed ValueEncoder/
// ValueDecoder pair to Go-generic Handler[T] via the RegisterHandler/
// LookupHandler free functions below (Go methods cannot themselves carry
// type parameters).
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]registryEntry
}

// registryEntry keeps the generic Handler[T] alongside a type-erased
// read/write pair built at registration time, when T is still in scope.
// bsonderive's reflection-based engine never has T available at compile
// time for an arbitrary struct field, so it consults the erased pair
// through LookupAny instead of LookupHandler.
type registryEntry struct {
	handler any
	read    func(bson.Value) (any, error)
	write   func(any) (bson.Value, error)
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[reflect.Type]registryEntry)}
}

// RegisterHandler stores h under T's reflect.Type, overwriting any prior
// entry for T.
func RegisterHandler[T any](reg *Registry, h Handler[T]) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	entry := registryEntry{
		handler: h,
		read: func(v bson.Value) (any, error) {
			return h.ReadTry(v)
		},
		write: func(a any) (bson.Value, error) {
			t, _ := a.(T)
			return h.WriteTry(t)
		},
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.entries[t] = entry
}

// LookupHandler retrieves the Handler[T] registered for T, if any.
func LookupHandler[T any](reg *Registry) (Handler[T], bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	reg.mu.RLock()
	e, ok := reg.entries[t]
	reg.mu.RUnlock()
	if !ok {
		return Handler[T]{}, false
	}
	h, ok := e.handler.(Handler[T])
	return h, ok
}

// LookupAny retrieves the type-erased read/write pair registered for t.
// Used by bsonderive, which only has a reflect.Type for a struct field,
// never the compile-time T LookupHandler needs.
func (reg *Registry) LookupAny(t reflect.Type) (read func(bson.Value) (any, error), write func(any) (bson.Value, error), ok bool) {
	reg.mu.RLock()
	e, ok := reg.entries[t]
	reg.mu.RUnlock()
	if !ok {
		return nil, nil, false
	}
	return e.read, e.write, true
}

// DefaultRegistry returns a Registry pre-populated with every built-in
// Handler this package exposes (§6, "Handler values for all primitive
// scalar types, common date types, UUID, ...").
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	RegisterHandler[int](reg, IntHandler())
	RegisterHandler[int32](reg, Int32Handler())
	RegisterHandler[int64](reg, Int64Handler())
	RegisterHandler[float64](reg, Float64Handler())
	RegisterHandler[bool](reg, BoolHandler())
	RegisterHandler[string](reg, StringHandler())
	RegisterHandler[time.Time](reg, TimeHandler())
	RegisterHandler[bson.ObjectID](reg, ObjectIDHandler())
	RegisterHandler[bson.Decimal128](reg, Decimal128Handler())
	RegisterHandler[uuid.UUID](reg, UUIDHandler())
	return reg
}
