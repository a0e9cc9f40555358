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

// Package logging builds the console loggers used by the treemap binary.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// scopeFieldName defines the key for the "scope" field in structured logs.
const scopeFieldName = "scope"

// New creates a human-readable console logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			scopeFieldName,
			zerolog.MessageFieldName,
		},
		// render the scope as [SCOPE], or nothing when unset
		FormatPrepare: func(m map[string]any) error {
			if v, ok := m[scopeFieldName].(string); ok && v != "" {
				m[scopeFieldName] = fmt.Sprintf("[%s]", v)
			} else {
				m[scopeFieldName] = ""
			}
			return nil
		},
		FieldsExclude: []string{scopeFieldName},
	}
	return zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}

// WithScope returns a child logger tagged with scope.
func WithScope(l zerolog.Logger, scope string) zerolog.Logger {
	return l.With().Str(scopeFieldName, scope).Logger()
}

// ParseLevel parses a level name such as "debug" or "info".  The empty string
// means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	l, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}
