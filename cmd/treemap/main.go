// Copyright 2024 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command treemap loads key/value entries into a treemap.Map and prints them
// back in ascending key order.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/google/treemap"
	"github.com/google/treemap/internal/config"
	"github.com/google/treemap/internal/logging"
)

func main() {
	cmd := config.CreateCommand(func(ctx context.Context, cfg *config.Config) error {
		return run(os.Stdout, os.Stderr, cfg)
	})
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out, logOut io.Writer, cfg *config.Config) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	baseLogger := logging.New(logOut, level)
	logger := logging.WithScope(baseLogger, "MAIN")

	m := treemap.NewOrdered[string, int]()
	m.SetLogger(logging.WithScope(baseLogger, "MAP"))
	for _, e := range cfg.Entries {
		old, replaced, err := m.Put(e.Key, e.Value)
		if err != nil {
			return err
		}
		if replaced {
			logger.Debug().Str("key", e.Key).Int("old", old).Int("new", e.Value).Msg("overwrote entry")
		}
	}
	logger.Info().Int("entries", m.Len()).Int("height", m.Height()).Msg("map loaded")

	if len(cfg.Entries) == 0 {
		return errors.New("no entries to load")
	}
	first := cfg.Entries[0].Key
	v, _, err := m.Get(first)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, v)

	for _, k := range m.Keys() {
		v, _, err := m.Get(k)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s, %d\n", k, v)
	}

	if cfg.Dump {
		m.Dump(out)
		fmt.Fprintf(out, "height: %d\n", m.Height())
	}
	return nil
}
