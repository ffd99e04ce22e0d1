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

package main

import (
	"cmp"
	"fmt"
	"io"

	"github.com/ajwerner/treemap"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newDemoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Fills a map with 1..19 -> A..S, removes 1..6, clears it, printing the values after each step.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), opts.log)
		},
	}
}

func runDemo(w io.Writer, log zerolog.Logger) error {
	m := treemap.New[int, string](cmp.Compare[int])
	for i := 1; i <= 6; i++ {
		m.Place(i, string(rune('A'+i-1)))
	}
	for i := 7; i <= 19; i++ {
		m.Set(i, string(rune('A'+i-1)))
	}

	dump := func(stage string) error {
		if err := m.Verify(); err != nil {
			return errors.Wrapf(err, "after %s", stage)
		}
		log.Info().Str("stage", stage).Int("len", m.Len()).Int("height", m.Height()).Msg("printing values")
		for key := range m.Keys(false) {
			if _, err := fmt.Fprintln(w, m.GetOrInsert(key)); err != nil {
				return errors.Wrap(err, "writing value")
			}
		}
		return nil
	}

	if err := dump("fill"); err != nil {
		return err
	}
	for i := 1; i <= 6; i++ {
		if !m.Remove(i) {
			return errors.AssertionFailedf("key %d missing", i)
		}
	}
	if err := dump("remove"); err != nil {
		return err
	}
	m.Clear()
	return dump("clear")
}
