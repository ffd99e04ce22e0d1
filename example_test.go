// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package treemap_test

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/ajwerner/treemap"
)

func ExampleMap() {
	m := treemap.New[string, int](strings.Compare)
	m.Place("foo", 1)
	m.Place("bar", 2)
	fmt.Println(m.Get("foo"))
	fmt.Println(m.Get("baz"))
	for k, v := range m.Entries(false) {
		fmt.Println(k, v)
	}

	// Output:
	// 1 true
	// 0 false
	// bar 2
	// foo 1
}

func ExampleMap_Remove() {
	m := treemap.New[int, string](cmp.Compare[int])
	for i, s := range []string{"b", "a", "d", "c", "e"} {
		m.Set(i, s)
	}
	fmt.Println(m.Remove(2), m.Remove(2))
	fmt.Println(strings.Join(slices.Collect(m.Values(true)), " "))

	// Output:
	// true false
	// e c a b
}

func ExampleIterator() {
	m := treemap.NewOrdered[int, string]()
	m.Set(3, "c")
	m.Set(1, "a")
	m.Set(2, "b")
	it := m.MakeIter(false)
	for it.Next() {
		fmt.Println(it.Key(), it.Value())
	}

	// Output:
	// 1 a
	// 2 b
	// 3 c
}
