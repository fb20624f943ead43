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

package apis

// AppError is an application-level error that declares which protocol
// status it should be reported with.
//
// Services raise AppErrors; dresult turns them into failed outcomes at the
// service boundary so that nothing but data reaches the transport layer.
type AppError interface {
	error

	// StatusCode returns the HTTP status the error declares for itself,
	// e.g. 404 for a missing entity. dresult classifies it with
	// status.FromErrorHTTP unless the caller forces a class.
	StatusCode() int
}

// CodedError is an AppError that additionally identifies the module that
// raised it and a numeric, module-scoped error code.
//
// Outcomes derived from a CodedError carry the code "<module>-<errorCode>".
// Outcomes derived from any other AppError carry an empty code.
type CodedError interface {
	AppError

	// ModuleCode returns the canonical module identifier, e.g. "AUTH".
	ModuleCode() string

	// ErrorCode returns the module-scoped numeric error code, e.g. 1001.
	ErrorCode() int
}

// DetailedError represents an error that exposes zero or more structured
// details, e.g. the fields that failed validation.
//
// Implementations SHOULD return a slice that is safe to iterate over and
// that will not be modified by the callee. Returning nil is allowed.
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}
