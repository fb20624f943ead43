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
	"strings"
	"sync"
	"testing"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/status"
	"google.golang.org/grpc/codes"
)

func TestDefaults_Contract(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(c status.Class, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(c)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				c, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(status.OK, 200, codes.OK)
	check(status.BadRequest, 400, codes.InvalidArgument)
	check(status.NotFound, 404, codes.NotFound)
	check(status.Unauthorized, 401, codes.Unauthenticated)
	check(status.Forbidden, 403, codes.PermissionDenied)
	check(status.InternalServerError, 500, codes.Internal)
	// anything else
	check(status.Empty, 400, codes.InvalidArgument)
	check(status.Class("teapot"), 400, codes.InvalidArgument)
}

func TestDefault_IsShared(t *testing.T) {
	if Default() != Default() {
		t.Fatalf("Default() must return the same instance")
	}
	if got := Default().HTTPStatus(status.NotFound); got != 404 {
		t.Fatalf("Default().HTTPStatus(not_found) = %d, want 404", got)
	}
}

func TestPriority_OverrideOverDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault(status.BadRequest, 409),
		WithHTTPOverride(status.BadRequest, 422),
		WithGRPCDefault(status.BadRequest, int(codes.Aborted)),
		WithGRPCOverride(status.BadRequest, int(codes.FailedPrecondition)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(status.BadRequest)
	if st.HTTP != 422 || st.GRPC != codes.FailedPrecondition {
		t.Fatalf("override must win; got %+v", st)
	}
}

func TestDefaultReplacement(t *testing.T) {
	m, err := New(WithHTTPDefault(status.NotFound, 410))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(status.NotFound); got != 410 {
		t.Fatalf("HTTPStatus(not_found) = %d, want 410", got)
	}
	if got := m.GRPCStatus(status.NotFound); got != codes.NotFound {
		t.Fatalf("gRPC default must be untouched, got %v", got)
	}
}

func TestFallback(t *testing.T) {
	m, err := New(WithHTTPFallback(500), WithGRPCFallback(int(codes.Unknown)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(status.Empty)
	if st.HTTP != 500 || st.GRPC != codes.Unknown {
		t.Fatalf("fallback not applied; got %+v", st)
	}
	if got := m.HTTPStatus(status.OK); got != 200 {
		t.Fatalf("fallback must not affect known classes; got %d", got)
	}
}

func TestNew_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"unknown class", WithHTTPOverride(status.Class("teapot"), 418)},
		{"empty class", WithGRPCOverride(status.Empty, 0)},
		{"http too small", WithHTTPOverride(status.OK, 42)},
		{"http too large", WithHTTPDefault(status.OK, 600)},
		{"grpc out of range", WithGRPCOverride(status.OK, 17)},
		{"grpc negative", WithGRPCDefault(status.OK, -1)},
		{"bad http fallback", WithHTTPFallback(0)},
		{"bad grpc fallback", WithGRPCFallback(99)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); err == nil {
				t.Fatalf("New(%s) expected error", tt.name)
			}
		})
	}
}

func TestNew_DoesNotShareState(t *testing.T) {
	a, _ := New(WithHTTPOverride(status.OK, 204))
	b, _ := New()
	if a.HTTPStatus(status.OK) != 204 || b.HTTPStatus(status.OK) != 200 {
		t.Fatalf("mappers must not share overrides")
	}
}

func TestExplain_Sources(t *testing.T) {
	m, err := New(WithHTTPOverride(status.BadRequest, 422))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(status.BadRequest)
	if !strings.Contains(exp, "http: source=override -> 422") {
		t.Fatalf("Explain must report the override:\n%s", exp)
	}
	if !strings.Contains(exp, "grpc: source=default -> InvalidArgument(3)") {
		t.Fatalf("Explain must report the gRPC default:\n%s", exp)
	}
	if !strings.Contains(m.Explain(status.Empty), "source=fallback") {
		t.Fatalf("Explain must report the fallback")
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(WithHTTPOverride(status.BadRequest, 422))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(status.BadRequest)
				_ = m.Status(status.NotFound)
				_ = m.Explain(status.Empty)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m, _ := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(status.NotFound)
	}
}

func BenchmarkMapperStatus_Override(b *testing.B) {
	m, _ := New(WithHTTPOverride(status.NotFound, 410))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(status.NotFound)
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
