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

// Package config loads the settings of the treemap binary from command line
// flags and an optional TOML file.
package config

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// Entry is a single key/value pair to seed the map with.
type Entry struct {
	Key   string `toml:"key"`
	Value int    `toml:"value"`
}

// Config holds the binary's settings.
type Config struct {
	LogLevel string  `toml:"log-level"`
	Dump     bool    `toml:"dump"`
	Entries  []Entry `toml:"entry"`
}

// DefaultEntries seed the map when neither the file nor the arguments name
// any entry.
var DefaultEntries = []Entry{{Key: "Word1", Value: 1}, {Key: "Word2", Value: 2}}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{LogLevel: "info"}
}

// FromTomlFile reads a Config from the TOML file at path.  Unset fields keep
// their defaults.
func FromTomlFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return cfg, nil
}

// ParseEntry parses a "key=value" argument.
func ParseEntry(s string) (Entry, error) {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return Entry{}, errors.Errorf("invalid entry %q, want key=value", s)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return Entry{}, errors.Wrapf(err, "invalid value in entry %q", s)
	}
	return Entry{Key: k, Value: n}, nil
}

// CreateCommand returns the root command.  runFunc receives the merged
// configuration.
func CreateCommand(runFunc func(ctx context.Context, cfg *Config) error) *cli.Command {
	return &cli.Command{
		Name:      "treemap",
		Usage:     "load entries into a binary search tree map and print them in key order",
		ArgsUsage: "[key=value ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a TOML file with [[entry]] tables",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (trace, debug, info, warn, error)",
				Value: "info",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "print the tree shape and height",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := Load(cmd)
			if err != nil {
				return err
			}
			return runFunc(ctx, cfg)
		},
	}
}

// Load merges the TOML file named by --config, if any, with the flags and
// positional entries of cmd.  Flags override the file; positional entries
// are appended after the file's.
func Load(cmd *cli.Command) (*Config, error) {
	cfg := Default()
	if path := cmd.String("config"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Errorf("no such file: %s", path)
		}
		c, err := FromTomlFile(path)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("dump") {
		cfg.Dump = cmd.Bool("dump")
	}
	for _, arg := range cmd.Args().Slice() {
		e, err := ParseEntry(arg)
		if err != nil {
			return nil, err
		}
		cfg.Entries = append(cfg.Entries, e)
	}
	if len(cfg.Entries) == 0 {
		cfg.Entries = append(cfg.Entries, DefaultEntries...)
	}
	return cfg, nil
}
