// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package bsonderive is the configurable derivation layer (L4): reflection-
// based Handler construction for record (struct) and sum (discriminated
// union) types, with annotation- and policy-driven field naming,
// flattening, and omission (§4.4).
//
// Grounded on the teacher's bson/struct_codec.go (structDescription cache,
// describeStruct) and bson/struct_tag_parser.go (tag grammar), generalized
// with Config's functional options in the style of the teacher's
// bson/bsonoptions package, plus discriminator-based sum dispatch the
// teacher's struct-only codec never needed.
package bsonderive

import (
	"reflect"

	"github.com/ornicar/ReactiveMongo-BSON/bson/bsoncodec"
)

// Config governs how DeriveHandler and DeriveUnionHandler turn a Go type
// into a Handler: field naming, the sum-type discriminator key, and
// per-type overrides for ignoring, renaming, flattening, and null-vs-omit
// handling of individual fields (§4.4).
type Config struct {
	fieldNaming   FieldNaming
	typeNaming    TypeNaming
	discriminator string

	automaticMaterialization bool
	registry                 *bsoncodec.Registry

	ignoredFields    map[reflect.Type]map[string]bool
	renamedFields    map[reflect.Type]map[string]string
	flattenedFields  map[reflect.Type]map[string]bool
	noneAsNullFields map[reflect.Type]map[string]bool
	variantNames     map[reflect.Type]string
}

// Option configures a Config. Applied in the order passed to NewConfig.
type Option func(*Config)

// defaultRegistry backs every Config that doesn't supply its own via
// WithRegistry.
var defaultRegistry = bsoncodec.DefaultRegistry()

// NewConfig builds a Config with identity field naming, simple-name type
// naming, a "className" discriminator, and automatic materialization
// disabled — the conservative defaults §4.4 describes. Slices and
// string-keyed maps are assembled from their element's Handler, and a
// struct type already reached by this derivation (the root type, a
// pointer back to it, a flattened field's type) needs nothing more; any
// other struct-typed field needs a registered Handler unless the caller
// opts in to reflection-based materialization for it.
func NewConfig(opts ...Option) *Config {
	cfg := &Config{
		fieldNaming:      IdentityNaming,
		typeNaming:       SimpleNameNaming,
		discriminator:    "className",
		ignoredFields:    map[reflect.Type]map[string]bool{},
		renamedFields:    map[reflect.Type]map[string]string{},
		flattenedFields:  map[reflect.Type]map[string]bool{},
		noneAsNullFields: map[reflect.Type]map[string]bool{},
		variantNames:     map[reflect.Type]string{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithFieldNaming sets the policy applied to every field not explicitly
// renamed by a tag or WithRenamedField.
func WithFieldNaming(n FieldNaming) Option {
	return func(cfg *Config) { cfg.fieldNaming = n }
}

// WithTypeNaming sets the policy used to compute a sum variant's
// discriminator value when no WithVariantName override applies.
func WithTypeNaming(n TypeNaming) Option {
	return func(cfg *Config) { cfg.typeNaming = n }
}

// WithDiscriminator overrides the sum-type discriminator field name
// (default "className").
func WithDiscriminator(name string) Option {
	return func(cfg *Config) { cfg.discriminator = name }
}

// WithRegistry supplies the Handler lookup table consulted for field
// types the derivation engine does not itself know how to build (scalars,
// time.Time, ObjectID, Decimal128, UUID, and any handlers the caller
// registered). Without this option, Config falls back to
// bsoncodec.DefaultRegistry().
func WithRegistry(reg *bsoncodec.Registry) Option {
	return func(cfg *Config) { cfg.registry = reg }
}

// WithAutomaticMaterialization lets field resolution fall through to
// recursively deriving a record Handler for a struct-typed field that has
// no registered Handler, instead of failing at construction time (§4.4,
// "opt-in automatic materialization").
func WithAutomaticMaterialization() Option {
	return func(cfg *Config) { cfg.automaticMaterialization = true }
}

// WithIgnoredField marks fieldName on T as @Ignore: absent from the wire
// document; read back as its Go zero value.
func WithIgnoredField[T any](fieldName string) Option {
	t := typeOf[T]()
	return func(cfg *Config) { cfg.markField(cfg.ignoredFields, t, fieldName) }
}

// WithRenamedField is @Key applied out-of-band: it gives fieldName on T
// the wire name newName, the same as a `bson:"newName"` tag would, for
// types the caller cannot annotate directly.
func WithRenamedField[T any](fieldName, newName string) Option {
	t := typeOf[T]()
	return func(cfg *Config) {
		m, ok := cfg.renamedFields[t]
		if !ok {
			m = map[string]string{}
			cfg.renamedFields[t] = m
		}
		m[fieldName] = newName
	}
}

// WithFlattenedField marks fieldName on T as @Flatten: its own record
// fields are spliced directly into the parent document instead of
// nesting under fieldName's wire name.
func WithFlattenedField[T any](fieldName string) Option {
	t := typeOf[T]()
	return func(cfg *Config) { cfg.markField(cfg.flattenedFields, t, fieldName) }
}

// WithNoneAsNullField marks fieldName on T as @NoneAsNull: an absent
// Option/pointer value writes an explicit Null element instead of the
// default of omitting the field entirely.
func WithNoneAsNullField[T any](fieldName string) Option {
	t := typeOf[T]()
	return func(cfg *Config) { cfg.markField(cfg.noneAsNullFields, t, fieldName) }
}

// WithVariantName overrides the discriminator value DeriveUnionHandler
// writes for variant type T, instead of computing one from TypeNaming.
func WithVariantName[T any](name string) Option {
	t := typeOf[T]()
	return func(cfg *Config) { cfg.variantNames[t] = name }
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (cfg *Config) markField(m map[reflect.Type]map[string]bool, t reflect.Type, fieldName string) {
	fields, ok := m[t]
	if !ok {
		fields = map[string]bool{}
		m[t] = fields
	}
	fields[fieldName] = true
}

func (cfg *Config) isIgnored(t reflect.Type, fieldName string) bool {
	return cfg.ignoredFields[t][fieldName]
}

func (cfg *Config) isFlattened(t reflect.Type, fieldName string) bool {
	return cfg.flattenedFields[t][fieldName]
}

func (cfg *Config) isNoneAsNull(t reflect.Type, fieldName string) bool {
	return cfg.noneAsNullFields[t][fieldName]
}

func (cfg *Config) renamedTo(t reflect.Type, fieldName string) (string, bool) {
	name, ok := cfg.renamedFields[t][fieldName]
	return name, ok
}

// effectiveName resolves a field's wire name in priority order: an
// explicit tag name, then a WithRenamedField override, then the
// configured FieldNaming policy applied to the canonicalized Go name.
func (cfg *Config) effectiveName(t reflect.Type, goFieldName string, tag fieldTag) string {
	if tag.name != "" {
		return tag.name
	}
	if name, ok := cfg.renamedTo(t, goFieldName); ok {
		return name
	}
	return cfg.fieldNaming(canonicalFieldName(goFieldName))
}

func (cfg *Config) variantName(t reflect.Type) string {
	if name, ok := cfg.variantNames[t]; ok {
		return name
	}
	return cfg.typeNaming(t)
}

func (cfg *Config) registryOrDefault() *bsoncodec.Registry {
	if cfg.registry != nil {
		return cfg.registry
	}
	return defaultRegistry
}
