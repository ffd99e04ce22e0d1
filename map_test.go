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

package treemap

import (
	"cmp"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func letter(i int) string { return string(rune('A' + i - 1)) }

func values[K, V any](m *Map[K, V], reverse bool) []V {
	var out []V
	for key := range m.Keys(reverse) {
		out = append(out, m.GetOrInsert(key))
	}
	return out
}

func TestScenario(t *testing.T) {
	m := New[int, string](cmp.Compare[int])
	for i := 1; i <= 6; i++ {
		require.False(t, m.Place(i, letter(i)))
	}
	for i := 7; i <= 19; i++ {
		m.Set(i, letter(i))
	}
	require.Equal(t, 19, m.Len())
	require.Equal(t, strings.Split("ABCDEFGHIJKLMNOPQRS", ""), values(m, false))

	for i := 1; i <= 6; i++ {
		require.True(t, m.Remove(i))
		require.NoError(t, m.Verify())
	}
	got := values(m, false)
	require.Len(t, got, 13)
	require.Equal(t, strings.Split("GHIJKLMNOPQRS", ""), got)

	m.Clear()
	require.Empty(t, values(m, false))
	require.Empty(t, values(m, true))
	require.Equal(t, 0, m.Len())
}

func TestPlaceReplaces(t *testing.T) {
	m := NewOrdered[string, int]()
	require.False(t, m.Place("a", 1))
	require.True(t, m.Place("a", 2))
	require.Equal(t, 1, m.Len())
	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v)

	m.Set("a", 3)
	m.Set("b", 4)
	require.Equal(t, 2, m.Len())
	require.Equal(t, 3, m.GetOrDefault("a", -1))
	require.Equal(t, -1, m.GetOrDefault("c", -1))
	require.False(t, m.ContainsKey("c"))
}

func TestGetDoesNotInsert(t *testing.T) {
	m := NewOrdered[int, string]()
	_, ok := m.Get(1)
	require.False(t, ok)
	require.Equal(t, "x", m.GetOrDefault(1, "x"))
	require.Equal(t, 0, m.Len())

	require.Equal(t, "", m.GetOrInsert(1))
	require.Equal(t, 1, m.Len())
	require.True(t, m.ContainsKey(1))
	m.Set(1, "one")
	require.Equal(t, "one", m.GetOrInsert(1))
	require.Equal(t, 1, m.Len())
}

func TestRemoveAbsent(t *testing.T) {
	m := NewOrdered[int, int]()
	require.False(t, m.Remove(1))
	for _, k := range []int{5, 2, 8, 1, 3} {
		m.Set(k, k)
	}
	before := m.String()
	require.False(t, m.Remove(4))
	require.Equal(t, before, m.String())
	require.Equal(t, 5, m.Len())
}

func TestRemoveTwoChildNode(t *testing.T) {
	m := NewOrdered[int, int]()
	for _, k := range []int{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7} {
		m.Set(k, k)
	}
	require.True(t, m.Remove(4))
	require.NoError(t, m.Verify())
	require.Equal(t, 10, m.Len())
	require.Equal(t,
		[]int{1, 2, 3, 5, 6, 7, 8, 10, 12, 14},
		slices.Collect(m.Keys(false)))
	require.Equal(t, "((1:1,(,(5:5,7:7)6:6)3:3)2:2,(10:10,14:14)12:12)8:8;", m.String())
}

func TestTraversal(t *testing.T) {
	t.Parallel()
	m := NewOrdered[int, int]()
	const maxN = 500
	N := rand.Intn(maxN)
	for _, k := range rand.Perm(N) {
		m.Set(k, -k)
	}
	for _, k := range rand.Perm(N)[:N/3] {
		m.Remove(k)
	}
	require.NoError(t, m.Verify())

	fwd := slices.Collect(m.Keys(false))
	rev := slices.Collect(m.Keys(true))
	require.Len(t, fwd, m.Len())
	require.True(t, slices.IsSorted(fwd))
	for i := 1; i < len(fwd); i++ {
		require.Less(t, fwd[i-1], fwd[i])
	}
	slices.Reverse(rev)
	require.Equal(t, fwd, rev)

	vals := slices.Collect(m.Values(false))
	require.Len(t, vals, m.Len())
	var i int
	for k, v := range m.Entries(false) {
		require.Equal(t, fwd[i], k)
		require.Equal(t, -k, v)
		require.Equal(t, vals[i], v)
		i++
	}
	require.Equal(t, m.Len(), i)

	if N > 0 {
		lo, _, ok := m.Min()
		require.Equal(t, len(fwd) > 0, ok)
		if ok {
			require.Equal(t, fwd[0], lo)
			hi, _, _ := m.Max()
			require.Equal(t, fwd[len(fwd)-1], hi)
		}
	}
}

func TestEarlyBreak(t *testing.T) {
	m := NewOrdered[int, int]()
	for i := 0; i < 10; i++ {
		m.Set(i, i)
	}
	var got []int
	for k := range m.Entries(true) {
		if k < 7 {
			break
		}
		got = append(got, k)
	}
	require.Equal(t, []int{9, 8, 7}, got)
}

func TestMutationDuringIteration(t *testing.T) {
	m := NewOrdered[int, int]()
	for i := 0; i < 5; i++ {
		m.Set(i, i)
	}

	// Overwrites are allowed and observed.
	for k := range m.Keys(false) {
		m.Set(k, k*2)
	}
	require.Equal(t, []int{0, 2, 4, 6, 8}, slices.Collect(m.Values(false)))

	require.Panics(t, func() {
		for k := range m.Keys(false) {
			m.Remove(k)
		}
	})
	require.Panics(t, func() {
		for k := range m.Keys(true) {
			m.Set(k+100, k)
		}
	})
	it := m.MakeIter(false)
	require.True(t, it.Next())
	m.Clear()
	require.Panics(t, func() { it.Next() })
	it.Reset()
	require.False(t, it.Next())
	require.False(t, it.Valid())
}

type point struct {
	x int
	y string
}

func TestCompositeKeys(t *testing.T) {
	m := New[point, int](Then(
		By(func(p point) int { return p.x }, cmp.Compare[int]),
		By(func(p point) string { return p.y }, Reverse(strings.Compare)),
	))
	for i, p := range []point{{2, "a"}, {1, "b"}, {2, "c"}, {1, "a"}, {2, "b"}} {
		m.Set(p, i)
	}
	m.Set(point{2, "c"}, 10)
	require.Equal(t, 5, m.Len())
	require.Equal(t,
		[]point{{1, "b"}, {1, "a"}, {2, "c"}, {2, "b"}, {2, "a"}},
		slices.Collect(m.Keys(false)))
	require.Equal(t, 10, m.GetOrDefault(point{2, "c"}, -1))
}

func TestNewNilCompare(t *testing.T) {
	require.Panics(t, func() { New[int, int](nil) })
}
