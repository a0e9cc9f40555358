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

package treemap

import "github.com/pkg/errors"

var (
	// ErrInvalidKey is returned when an operation receives the absent (nil)
	// key.  The map never stores, or searches for, a nil key.
	ErrInvalidKey = errors.New("treemap: invalid key")

	// ErrUnsupported is returned by the operations the map deliberately does
	// not implement: key removal and entry iteration.
	ErrUnsupported = errors.New("treemap: unsupported operation")
)

func invalidKey(op string) error {
	return errors.Wrap(ErrInvalidKey, op)
}

func unsupported(op string) error {
	return errors.Wrap(ErrUnsupported, op)
}
