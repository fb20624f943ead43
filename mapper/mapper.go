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

package mapper

import (
	"fmt"
	"strings"
	"sync"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/status"
	"google.golang.org/grpc/codes"
)

// maxGRPCCode is one past the last canonical gRPC code (Unauthenticated).
const maxGRPCCode = int(codes.Unauthenticated) + 1

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, fallbacks).
//  3. Validate every class and status the options mentioned.
//  4. Freeze all maps into immutable copies (fresh allocations).
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}

	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	for _, c := range b.classes {
		if err := status.Validate(c); err != nil {
			return nil, fmt.Errorf("mapper: class %q: %w", c, err)
		}
	}
	for _, m := range []map[status.Class]int{b.httpDefaults, b.httpOverride} {
		for c, v := range m {
			if !validHTTP(v) {
				return nil, fmt.Errorf("mapper: invalid HTTP status %d for class %q", v, c)
			}
		}
	}
	for _, m := range []map[status.Class]int{b.grpcDefaults, b.grpcOverride} {
		for c, v := range m {
			if !validGRPC(v) {
				return nil, fmt.Errorf("mapper: invalid gRPC code %d for class %q", v, c)
			}
		}
	}
	if !validHTTP(b.fallbackHTTP) {
		return nil, fmt.Errorf("mapper: invalid HTTP fallback %d", b.fallbackHTTP)
	}
	if !validGRPC(int(b.fallbackGRPC)) {
		return nil, fmt.Errorf("mapper: invalid gRPC fallback %d", b.fallbackGRPC)
	}

	return &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

var (
	defaultOnce   sync.Once
	defaultMapper apis.Mapper
)

// Default returns the shared mapper built with library defaults only.
func Default() apis.Mapper {
	defaultOnce.Do(func() {
		m, err := New()
		if err != nil {
			panic(err)
		}
		defaultMapper = m
	})
	return defaultMapper
}

func validHTTP(v int) bool { return v >= 100 && v <= 599 }

func validGRPC(v int) bool { return v >= 0 && v < maxGRPCCode }

// mapper is an immutable mapper implementation that combines per-class
// defaults and per-class exact overrides. Lookups are O(1) and safe for
// concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a class.
	httpDefault map[status.Class]int

	// grpcDefault holds the base gRPC status for a class.
	grpcDefault map[status.Class]codes.Code

	// httpOverride holds explicit HTTP statuses that beat defaults.
	httpOverride map[status.Class]int

	// grpcOverride holds explicit gRPC statuses that beat defaults.
	grpcOverride map[status.Class]codes.Code

	// fallbackHTTP is used when a class has no default at all.
	fallbackHTTP int

	// fallbackGRPC is used when a class has no default at all.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given class.
//
// Resolution order (highest to lowest):
//  1. exact per-class override;
//  2. per-class default;
//  3. fallback.
func (m *mapper) HTTPStatus(c status.Class) int {
	if v, ok := m.httpOverride[c]; ok {
		return v
	}
	if v, ok := m.httpDefault[c]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given class.
// Uses the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c status.Class) codes.Code {
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC for the same class.
func (m *mapper) Status(c status.Class) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a class.
//
// Example output:
//
//	class="not_found"
//	http: source=default -> 404
//	grpc: source=default -> NotFound(5)
//
// source is one of override, default or fallback.
func (m *mapper) Explain(c status.Class) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "class=%q\n", c)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(c))
	_, _ = fmt.Fprint(&b, m.explainGRPC(c))
	return b.String()
}

func (m *mapper) explainHTTP(c status.Class) string {
	if v, ok := m.httpOverride[c]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok := m.httpDefault[c]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

func (m *mapper) explainGRPC(c status.Class) string {
	if v, ok := m.grpcOverride[c]; ok {
		return fmt.Sprintf("grpc: source=override -> %s(%d)", v, int(v))
	}
	if v, ok := m.grpcDefault[c]; ok {
		return fmt.Sprintf("grpc: source=default -> %s(%d)", v, int(v))
	}
	return fmt.Sprintf("grpc: source=fallback -> %s(%d)", m.fallbackGRPC, int(m.fallbackGRPC))
}
