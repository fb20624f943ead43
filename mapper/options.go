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
	"dirpx.dev/dresult/status"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault replaces the library default HTTP status for a class.
func WithHTTPDefault(c status.Class, http int) Option {
	return func(b *builder) { b.touch(c); b.httpDefaults[c] = http }
}

// WithGRPCDefault replaces the library default gRPC status for a class.
func WithGRPCDefault(c status.Class, grpc int) Option {
	return func(b *builder) { b.touch(c); b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for a class.
// Overrides take precedence over defaults.
func WithHTTPOverride(c status.Class, http int) Option {
	return func(b *builder) { b.touch(c); b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC override for a class.
// Overrides take precedence over defaults.
func WithGRPCOverride(c status.Class, grpc int) Option {
	return func(b *builder) { b.touch(c); b.grpcOverride[c] = grpc }
}

// WithHTTPFallback sets the HTTP status used for classes without a default.
func WithHTTPFallback(http int) Option {
	return func(b *builder) { b.fallbackHTTP = http }
}

// WithGRPCFallback sets the gRPC status used for classes without a default.
func WithGRPCFallback(grpc int) Option {
	return func(b *builder) { b.fallbackGRPC = codes.Code(grpc) }
}
