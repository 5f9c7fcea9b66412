// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package argv

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phkaeser/libbase-sub000/avl"
	"github.com/phkaeser/libbase-sub000/fault"
)

// Parser - a registry of option definitions
type Parser struct {
	names *avl.Tree // of *Definition ordered by name
	defs  []*Definition
}

// internal: tree ordering over definition names
func compareDefinition(node *avl.Node, key interface{}) int {
	return strings.Compare(node.Item().(*Definition).name, key.(string))
}

// NewParser - register a list of definitions
//
// a repeated name is refused, the tree insert detects it
func NewParser(defs ...*Definition) (*Parser, error) {
	p := &Parser{
		names: avl.New(compareDefinition, nil),
		defs:  make([]*Definition, 0, len(defs)),
	}
	for _, d := range defs {
		if nil == d || !d.valid() {
			return nil, fault.InvalidParameter
		}
		if !p.names.Insert(d.name, avl.NewNode(d), false) {
			return nil, fault.DuplicateName
		}
		p.defs = append(p.defs, d)
	}
	return p, nil
}

// Lookup - find a definition by name, nil when not registered
func (p *Parser) Lookup(name string) *Definition {
	node := p.names.Search(name)
	if nil == node {
		return nil
	}
	return node.Item().(*Definition)
}

// Parse - scan an input slice assigning option values
//
// accepted forms: -name  --name  -name=value  --name=value and a
// bare "--" terminating option scanning.  Defaults are assigned to
// every destination first, inputs that are not options come back as
// positional arguments in their original order
func (p *Parser) Parse(inputs []string) ([]string, error) {

	for _, d := range p.defs {
		d.assignDefault()
	}

	arguments := make([]string, 0, len(inputs))

	n := 0
loop:
	for i, item := range inputs {

		if "" == item {
			arguments = append(arguments, "") // empty argument
			continue loop
		}

		// check for end of options
		if "--" == item {
			n = i + 1
			break loop
		}

		if '-' != item[0] {
			arguments = append(arguments, item)
			continue loop
		}

		// strip option dashes
		for len(item) > 0 && '-' == item[0] {
			item = item[1:]
		}
		if "" == item {
			continue loop // ignore null option
		}

		name := item
		value := ""
		hasValue := false
		s := strings.SplitN(item, "=", 2)
		if 2 == len(s) {
			name = s[0]
			value = s[1]
			hasValue = true
		}

		d := p.Lookup(name)
		if nil == d {
			return nil, fault.UnknownName
		}

		err := d.assign(value, hasValue)
		if nil != err {
			return nil, err
		}
	}
	if 0 != n {
		arguments = append(arguments, inputs[n:]...)
	}

	return arguments, nil
}

// internal: convert and store one occurrence
func (d *Definition) assign(value string, hasValue bool) error {
	switch d.kind {
	case boolKind:
		if !hasValue {
			*d.boolOut = true
			return nil
		}
		b, err := strconv.ParseBool(value)
		if nil != err {
			return fault.InvalidValue
		}
		*d.boolOut = b

	case stringKind:
		if !hasValue {
			return fault.MissingValue
		}
		*d.stringOut = value

	case uintKind:
		if !hasValue {
			return fault.MissingValue
		}
		u, err := strconv.ParseUint(value, 10, 64)
		if nil != err {
			return fault.InvalidValue
		}
		*d.uintOut = u
	}
	return nil
}

// Usage - write an aligned option listing in declaration order
func (p *Parser) Usage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s [options] [--] [arguments]\n", program)

	width := 0
	for _, d := range p.defs {
		if n := len(d.placeholder()); n > width {
			width = n
		}
	}
	for _, d := range p.defs {
		fmt.Fprintf(w, "  %-*s  %s\n", width, d.placeholder(), d.description)
	}
}
