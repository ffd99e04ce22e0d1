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

// Command treemap drives the treemap package. The demo subcommand prints the
// values of a small map as it is filled, trimmed and cleared; the bench
// subcommand exercises a large map and reports throughput and tree shape.
package main

import (
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel  string
	logFormat string
	log       zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "treemap",
		Short:         "Exercises an unbalanced binary search tree map.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			opts.log, err = newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			return err
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (trace|debug|info|warn|error).")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "console", "Log format (console|json).")
	cmd.AddCommand(newDemoCmd(opts), newBenchCmd(opts))
	return cmd
}

func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "parsing log level %q", level)
	}
	switch format {
	case "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	case "json":
	default:
		return zerolog.Nop(), errors.Newf("unknown log format %q", format)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		log.Error().Err(err).Msg("treemap failed")
		os.Exit(1)
	}
}
