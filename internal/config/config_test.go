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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	var got *Config
	cmd := CreateCommand(func(_ context.Context, cfg *Config) error {
		got = cfg
		return nil
	})
	err := cmd.Run(context.Background(), append([]string{"treemap"}, args...))
	return got, err
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "treemap.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestCreateCommand(t *testing.T) {
	file := `
log-level = "warn"
dump = true

[[entry]]
key = "b"
value = 2

[[entry]]
key = "a"
value = 1
`
	tcs := []struct {
		name   string
		args   func(t *testing.T) []string
		assert func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "defaults",
			args: func(t *testing.T) []string { return nil },
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.False(t, cfg.Dump)
				assert.Equal(t, DefaultEntries, cfg.Entries)
			},
		},
		{
			name: "flags and entries",
			args: func(t *testing.T) []string {
				return []string{"--log-level", "debug", "--dump", "x=10", "y=-3"}
			},
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.True(t, cfg.Dump)
				assert.Equal(t, []Entry{{"x", 10}, {"y", -3}}, cfg.Entries)
			},
		},
		{
			name: "config file",
			args: func(t *testing.T) []string {
				return []string{"--config", writeFile(t, file), "c=3"}
			},
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "warn", cfg.LogLevel)
				assert.True(t, cfg.Dump)
				assert.Equal(t, []Entry{{"b", 2}, {"a", 1}, {"c", 3}}, cfg.Entries)
			},
		},
		{
			name: "flag overrides file",
			args: func(t *testing.T) []string {
				return []string{"-c", writeFile(t, file), "--log-level", "error"}
			},
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "error", cfg.LogLevel)
			},
		},
		{
			name: "missing file",
			args: func(t *testing.T) []string {
				return []string{"--config", filepath.Join(t.TempDir(), "nope.toml")}
			},
			assert: func(t *testing.T, cfg *Config, err error) {
				assert.ErrorContains(t, err, "no such file")
				assert.Nil(t, cfg)
			},
		},
		{
			name: "bad entry",
			args: func(t *testing.T) []string { return []string{"novalue"} },
			assert: func(t *testing.T, cfg *Config, err error) {
				assert.ErrorContains(t, err, "want key=value")
			},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := run(t, tc.args(t)...)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseEntry(t *testing.T) {
	e, err := ParseEntry("k=v=1")
	assert.Error(t, err)
	assert.Equal(t, Entry{}, e)

	e, err = ParseEntry("=1")
	assert.Error(t, err)

	e, err = ParseEntry("Word1=1")
	require.NoError(t, err)
	assert.Equal(t, Entry{Key: "Word1", Value: 1}, e)
}

func TestFromTomlFileInvalid(t *testing.T) {
	_, err := FromTomlFile(writeFile(t, "entry = 3\n[[entry]]\n"))
	assert.Error(t, err)
}
