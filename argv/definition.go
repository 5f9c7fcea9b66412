// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package argv

// option kinds
type kind int

const (
	boolKind kind = iota
	stringKind
	uintKind
)

// Definition - one declared option
//
// build with Bool, String or Uint and hand to NewParser
type Definition struct {
	kind        kind
	name        string
	description string

	boolDefault bool
	boolOut     *bool

	stringDefault string
	stringOut     *string

	uintDefault uint64
	uintOut     *uint64
}

// Bool - declare a flag option
//
// present on the input sets out to true, an explicit -name=value
// accepts the strconv boolean forms
func Bool(name string, description string, defaultValue bool, out *bool) *Definition {
	return &Definition{
		kind:        boolKind,
		name:        name,
		description: description,
		boolDefault: defaultValue,
		boolOut:     out,
	}
}

// String - declare a string valued option
func String(name string, description string, defaultValue string, out *string) *Definition {
	return &Definition{
		kind:          stringKind,
		name:          name,
		description:   description,
		stringDefault: defaultValue,
		stringOut:     out,
	}
}

// Uint - declare an unsigned number valued option
func Uint(name string, description string, defaultValue uint64, out *uint64) *Definition {
	return &Definition{
		kind:        uintKind,
		name:        name,
		description: description,
		uintDefault: defaultValue,
		uintOut:     out,
	}
}

// Name - the option name as declared
func (d *Definition) Name() string {
	return d.name
}

// Description - the usage text as declared
func (d *Definition) Description() string {
	return d.description
}

// internal: true when the destination pointer matches the kind
func (d *Definition) valid() bool {
	if "" == d.name {
		return false
	}
	switch d.kind {
	case boolKind:
		return nil != d.boolOut
	case stringKind:
		return nil != d.stringOut
	case uintKind:
		return nil != d.uintOut
	default:
		return false
	}
}

// internal: write the declared default to the destination
func (d *Definition) assignDefault() {
	switch d.kind {
	case boolKind:
		*d.boolOut = d.boolDefault
	case stringKind:
		*d.stringOut = d.stringDefault
	case uintKind:
		*d.uintOut = d.uintDefault
	}
}

// internal: placeholder for the usage listing
func (d *Definition) placeholder() string {
	switch d.kind {
	case stringKind:
		return "--" + d.name + "=STRING"
	case uintKind:
		return "--" + d.name + "=NUMBER"
	default:
		return "--" + d.name
	}
}
