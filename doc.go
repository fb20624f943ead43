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

// Package dresult provides typed outcomes for the boundary between a service
// layer and its transport.
//
// Instead of returning errors across that boundary, services return a
// Result (or an Of[T] carrying a payload). An outcome is an immutable value
// with:
//
//   - Succeeded: true only for success outcomes;
//   - Message: human-readable text, with a default per outcome kind;
//   - Code: "<module>-<errorCode>" when derived from an apis.CodedError,
//     empty otherwise;
//   - Status: a protocol-agnostic status.Class.
//
// Each outcome kind has a single entry point configured with options:
//
//	dresult.Success()
//	dresult.SuccessOf(user, dresult.WithMessage("fetched"))
//	dresult.NotFound()
//	dresult.NotFound(dresult.WithError(err))   // class is still not_found
//	dresult.FromError(err)                     // class declared by err
//	dresult.Failuref("user {0} is locked", id) // positional formatting
//
// Transport adapters (dirpx.dev/dresult/httpx, dirpx.dev/dresult/grpcx)
// turn outcomes into responses; see dirpx.dev/dresult/mapper for the
// class-to-status table.
//
// Both variants are built by the same internal helper, so a Result and the
// base of an Of[T] built with the same inputs are always equal.
package dresult
