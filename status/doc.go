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

// Package status defines the protocol-agnostic classification of a dresult
// outcome.
//
// A Class answers "what kind of outcome is this?" without committing to a
// transport. There are exactly six classes:
//
//   - ok;
//   - bad_request;
//   - not_found;
//   - unauthorized;
//   - forbidden;
//   - internal_server_error.
//
// Transport adapters (see dirpx.dev/dresult/mapper) translate a Class into
// an HTTP status or a gRPC code. The empty Class is the zero value and means
// "not classified"; adapters treat it like any other unknown class.
package status
