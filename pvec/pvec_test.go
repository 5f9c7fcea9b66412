// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Philipp Kaeser
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pvec_test

import (
	"reflect"
	"testing"

	"github.com/phkaeser/libbase-sub000/fault"
	"github.com/phkaeser/libbase-sub000/pvec"
)

// collect the vector contents for comparison
func contents(v *pvec.Vector) []string {
	out := []string{}
	v.Each(func(i int, item interface{}) bool {
		out = append(out, item.(string))
		return true
	})
	return out
}

func doCompare(t *testing.T, v *pvec.Vector, expected []string) {
	actual := contents(v)
	if !reflect.DeepEqual(actual, expected) {
		t.Fatalf("contents: actual: %v  expected: %v", actual, expected)
	}
	if len(expected) != v.Count() {
		t.Fatalf("count: actual: %d  expected: %d", v.Count(), len(expected))
	}
	if (0 == len(expected)) != v.IsEmpty() {
		t.Fatalf("empty state wrong for %d items", len(expected))
	}
}

func TestAppendInsertRemove(t *testing.T) {
	v := pvec.New(4)
	doCompare(t, v, []string{})

	v.Append("beta")
	v.Append("delta")
	doCompare(t, v, []string{"beta", "delta"})

	if err := v.Insert(0, "alpha"); nil != err {
		t.Fatalf("insert front: %s", err)
	}
	if err := v.Insert(2, "gamma"); nil != err {
		t.Fatalf("insert middle: %s", err)
	}
	if err := v.Insert(4, "epsilon"); nil != err {
		t.Fatalf("insert at count: %s", err)
	}
	doCompare(t, v, []string{"alpha", "beta", "gamma", "delta", "epsilon"})

	if err := v.Insert(6, "bad"); fault.IndexOutOfRange != err {
		t.Fatalf("insert past count: %v", err)
	}
	if err := v.Insert(-1, "bad"); fault.IndexOutOfRange != err {
		t.Fatalf("insert negative: %v", err)
	}

	item, err := v.Remove(2)
	if nil != err || "gamma" != item.(string) {
		t.Fatalf("remove middle: %v %v", item, err)
	}
	item, err = v.Remove(0)
	if nil != err || "alpha" != item.(string) {
		t.Fatalf("remove front: %v %v", item, err)
	}
	item, err = v.Remove(2)
	if nil != err || "epsilon" != item.(string) {
		t.Fatalf("remove back: %v %v", item, err)
	}
	doCompare(t, v, []string{"beta", "delta"})

	_, err = v.Remove(2)
	if fault.IndexOutOfRange != err {
		t.Fatalf("remove past count: %v", err)
	}
	if !fault.IsErrInvalid(err) {
		t.Fatalf("index error has the wrong class: %v", err)
	}
}

func TestAtSet(t *testing.T) {
	v := pvec.New(0)
	v.Append("one")
	v.Append("two")

	item, ok := v.At(1)
	if !ok || "two" != item.(string) {
		t.Fatalf("at: %v %v", item, ok)
	}
	if _, ok := v.At(2); ok {
		t.Fatal("at past count succeeded")
	}
	if _, ok := v.At(-1); ok {
		t.Fatal("at negative succeeded")
	}

	if err := v.Set(0, "uno"); nil != err {
		t.Fatalf("set: %s", err)
	}
	doCompare(t, v, []string{"uno", "two"})
	if err := v.Set(5, "bad"); fault.IndexOutOfRange != err {
		t.Fatalf("set past count: %v", err)
	}
}

func TestStack(t *testing.T) {
	v := pvec.New(2)

	if _, ok := v.Pop(); ok {
		t.Fatal("pop on empty succeeded")
	}
	if _, ok := v.Top(); ok {
		t.Fatal("top on empty succeeded")
	}

	v.Push("first")
	v.Push("second")
	v.Push("third")

	item, ok := v.Top()
	if !ok || "third" != item.(string) {
		t.Fatalf("top: %v %v", item, ok)
	}
	doCompare(t, v, []string{"first", "second", "third"})

	item, ok = v.Pop()
	if !ok || "third" != item.(string) {
		t.Fatalf("pop: %v %v", item, ok)
	}
	item, ok = v.Pop()
	if !ok || "second" != item.(string) {
		t.Fatalf("pop: %v %v", item, ok)
	}
	doCompare(t, v, []string{"first"})

	// mixed vector and stack use shares the same storage
	v.Append("last")
	item, ok = v.Pop()
	if !ok || "last" != item.(string) {
		t.Fatalf("pop after append: %v %v", item, ok)
	}
}

func TestResetEach(t *testing.T) {
	v := pvec.New(8)
	for _, s := range []string{"a", "b", "c", "d"} {
		v.Append(s)
	}

	seen := []string{}
	v.Each(func(i int, item interface{}) bool {
		seen = append(seen, item.(string))
		return i < 1
	})
	if !reflect.DeepEqual(seen, []string{"a", "b"}) {
		t.Fatalf("early stop failed: %v", seen)
	}

	v.Reset()
	doCompare(t, v, []string{})

	// the vector stays usable
	v.Append("fresh")
	doCompare(t, v, []string{"fresh"})

	v2 := pvec.New(-5)
	doCompare(t, v2, []string{})
}
