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

// Reverse returns a comparison function ordering keys opposite to cmp.
func Reverse[K any](cmp func(K, K) int) func(K, K) int {
	return func(a, b K) int { return cmp(b, a) }
}

// By returns a comparison function ordering keys by the field extracted
// with f.
func By[K, F any](f func(K) F, cmp func(F, F) int) func(K, K) int {
	return func(a, b K) int { return cmp(f(a), f(b)) }
}

// Then combines comparison functions lexicographically: keys are ordered by
// the first function, ties are broken by the second, and so on. It is used
// to order composite keys.
func Then[K any](cmps ...func(K, K) int) func(K, K) int {
	return func(a, b K) int {
		for _, cmp := range cmps {
			if c := cmp(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}
