/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package status

import (
	"bytes"
	"encoding"
	"errors"
	"net/http"
	"strings"
)

// Class is the canonical, validated representation of an outcome class.
//
// It is a separate string type so that callers cannot accidentally pass a
// raw, unvalidated string where a classification is expected, while still
// being readable in logs and JSON.
type Class string

// Known classes. The set is closed: Parse rejects anything else.
const (
	// OK classifies a successful outcome. Only success constructors
	// produce it.
	OK Class = "ok"

	// BadRequest classifies a generic failure caused by the caller.
	// It is also the class of a plain failure with no more specific kind.
	BadRequest Class = "bad_request"

	// NotFound classifies a failure where the target resource does not
	// exist (or is not visible to the caller).
	NotFound Class = "not_found"

	// Unauthorized classifies a failure where the caller is not
	// authenticated.
	Unauthorized Class = "unauthorized"

	// Forbidden classifies a failure where the caller is authenticated but
	// not allowed to perform the operation.
	Forbidden Class = "forbidden"

	// InternalServerError classifies an unexpected server-side failure.
	InternalServerError Class = "internal_server_error"
)

var (
	// ErrClassInvalid is returned when a value cannot be parsed or validated
	// as a status class.
	ErrClassInvalid = errors.New("dresult: invalid status class")
)

// Ensure Class implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into config files and API structs.
var (
	_ encoding.TextMarshaler   = (*Class)(nil)
	_ encoding.TextUnmarshaler = (*Class)(nil)
)

// Empty is the zero-value class. It is never produced by dresult
// constructors, but may appear in zero-value outcomes.
var Empty Class = ""

// all lists the known classes in a stable order.
var all = []Class{OK, BadRequest, NotFound, Unauthorized, Forbidden, InternalServerError}

// All returns the known classes in a stable order. The returned slice is a
// fresh copy and may be modified by the caller.
func All() []Class {
	out := make([]Class, len(all))
	copy(out, all)
	return out
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Class value.
func Parse(s string) (Class, error) {
	c := Class(Normalize(s))
	if err := Validate(c); err != nil {
		return Empty, err
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Class {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize brings an arbitrary string closer to the canonical class form:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' and ' ' with '_'.
//
// It does NOT guarantee that the result is valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// Validate checks whether c is one of the known classes.
// The empty class is considered invalid.
func Validate(c Class) error {
	if !c.Known() {
		return ErrClassInvalid
	}
	return nil
}

// Known reports whether c is one of the six known classes.
func (c Class) Known() bool {
	switch c {
	case OK, BadRequest, NotFound, Unauthorized, Forbidden, InternalServerError:
		return true
	}
	return false
}

// String returns the canonical string representation of the class.
func (c Class) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Class) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Class) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// FromHTTP classifies an HTTP status code.
//
// 2xx codes map to OK and the five statuses that have a class of their own
// map exactly. Everything else, other 5xx codes included, maps to BadRequest.
func FromHTTP(code int) Class {
	switch {
	case code >= 200 && code < 300:
		return OK
	case code == http.StatusNotFound:
		return NotFound
	case code == http.StatusUnauthorized:
		return Unauthorized
	case code == http.StatusForbidden:
		return Forbidden
	case code == http.StatusInternalServerError:
		return InternalServerError
	}
	return BadRequest
}

// FromErrorHTTP classifies the HTTP status declared by an application error.
//
// It behaves like FromHTTP except that a failure is never classified as OK:
// an error declaring a 2xx status is a bad request.
func FromErrorHTTP(code int) Class {
	if c := FromHTTP(code); c != OK {
		return c
	}
	return BadRequest
}
