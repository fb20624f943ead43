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

// Package apperr provides a minimal structured application error that
// satisfies the dresult capability contracts in dirpx.dev/dresult/apis.
//
// Two shapes exist:
//
//   - *Error declares a protocol status and a message (apis.AppError);
//   - *CoreError additionally carries a module code and a numeric error code
//     (apis.CodedError), which dresult renders as "<module>-<errorCode>".
//
// Both are immutable: all WithX helpers return shallow copies.
//
// Usage:
//
//	var Users = module.MustParse("users")
//
//	return apperr.Core(Users, 1004, http.StatusConflict, "user {0} already exists",
//	    apperr.WithDetailOption(apis.Detail{Type: "field", Field: "email"}),
//	)
package apperr
