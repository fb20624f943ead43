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

package dresult

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// FormatError is the error class of every message formatting failure.
var FormatError = errs.Class("dresult: format")

var (
	// ErrMalformedTemplate is returned for an unclosed, empty or non-numeric
	// placeholder, or for a stray '}'.
	ErrMalformedTemplate = errors.New("malformed template")

	// ErrPlaceholderIndex is returned when a placeholder refers to a
	// parameter that was not supplied.
	ErrPlaceholderIndex = errors.New("placeholder index out of range")

	// ErrUnusedParameter is returned when a supplied parameter is never
	// referenced by the template.
	ErrUnusedParameter = errors.New("unused parameter")
)

// Format substitutes positional placeholders in template.
//
// With no params the template is returned verbatim: nothing is parsed, so
// literal braces are safe. Otherwise "{N}" is replaced by params[N] (a
// placeholder may appear more than once) and "{{" / "}}" produce literal
// braces. The placeholder count and the parameter count must agree: every
// placeholder needs a parameter and every parameter must be used.
func Format(template string, params ...string) (string, error) {
	if len(params) == 0 {
		return template, nil
	}

	used := make([]bool, len(params))
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); i++ {
		switch ch := template[i]; ch {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", formatErr(ErrMalformedTemplate, "unclosed placeholder at offset %d", i)
			}
			body := template[i+1 : i+1+end]
			idx, ok := parseIndex(body)
			if !ok {
				return "", formatErr(ErrMalformedTemplate, "placeholder %q at offset %d", "{"+body+"}", i)
			}
			if idx >= len(params) {
				return "", formatErr(ErrPlaceholderIndex, "{%d} with %d parameter(s)", idx, len(params))
			}
			b.WriteString(params[idx])
			used[idx] = true
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", formatErr(ErrMalformedTemplate, "stray '}' at offset %d", i)
		default:
			b.WriteByte(ch)
		}
	}

	for idx, ok := range used {
		if !ok {
			return "", formatErr(ErrUnusedParameter, "parameter %d of %d", idx, len(params))
		}
	}
	return b.String(), nil
}

// MustFormat is the panic-on-error variant of Format. It is useful for
// templates that are constants of the calling package.
func MustFormat(template string, params ...string) string {
	s, err := Format(template, params...)
	if err != nil {
		panic(err)
	}
	return s
}

// parseIndex accepts only a non-empty run of ASCII digits.
func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func formatErr(sentinel error, format string, args ...any) error {
	return FormatError.Wrap(fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...))
}
