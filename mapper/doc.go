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

// Package mapper provides deterministic, immutable mappings from dresult
// outcome classes (dirpx.dev/dresult/status) to transport-level statuses for
// HTTP and gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the Class;
//  2. per-Class default (library or user-adjusted);
//  3. fallback for classes with no default (400 / codes.InvalidArgument).
//
// # Library defaults
//
// The defaults are the response contract of dresult and should only be
// overridden deliberately:
//
//	ok                    -> 200 / OK
//	bad_request           -> 400 / InvalidArgument
//	not_found             -> 404 / NotFound
//	unauthorized          -> 401 / Unauthenticated
//	forbidden             -> 403 / PermissionDenied
//	internal_server_error -> 500 / Internal
//	anything else         -> 400 / InvalidArgument
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(status.BadRequest, http.StatusUnprocessableEntity),
//	)
//
// or loaded from a YAML policy file:
//
//	cfg, err := mapper.LoadFile("status-policy.yaml")
//	opts, err := cfg.Options()
//	m, err := mapper.New(opts...)
//
// Default returns the shared mapper with library defaults only.
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a class was resolved.
// It is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All inputs are copied during New; a Mapper is safe to share across
// handlers, goroutines and requests.
package mapper
