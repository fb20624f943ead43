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

package apperr

import (
	"net/http"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/module"
)

var (
	_ apis.AppError      = (*Error)(nil)
	_ apis.DetailedError = (*Error)(nil)
	_ apis.CodedError    = (*CoreError)(nil)
	_ apis.DetailedError = (*CoreError)(nil)
)

// Error is an application error with a declared protocol status.
type Error struct {
	// Status is the HTTP status the error declares for itself.
	// Zero means "not declared" and is reported as 500.
	Status int

	// Message is the rendered description of the error. dresult uses it
	// verbatim as the outcome message, or as a template when parameters
	// are supplied, so it should not embed the cause.
	Message string

	// Details is an optional list of structured details. The slice is
	// treated as immutable: WithDetail always copies it.
	Details []apis.Detail

	// Cause holds the wrapped underlying error (if any).
	Cause error
}

// E is a convenience constructor for Error. It always returns a new Error
// and applies all provided options in order.
func E(status int, msg string, opts ...Option) *Error {
	e := &Error{Status: status, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// NotFound returns an Error declaring 404.
func NotFound(msg string, opts ...Option) *Error {
	return E(http.StatusNotFound, msg, opts...)
}

// Invalid returns an Error declaring 400.
func Invalid(msg string, opts ...Option) *Error {
	return E(http.StatusBadRequest, msg, opts...)
}

// Internal returns an Error declaring 500.
func Internal(msg string, opts ...Option) *Error {
	return E(http.StatusInternalServerError, msg, opts...)
}

// Error implements the built-in error interface. It returns the message
// unchanged.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

// StatusCode implements apis.AppError.
func (e *Error) StatusCode() int {
	if e == nil || e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

// ErrorDetails implements apis.DetailedError.
func (e *Error) ErrorDetails() []apis.Detail {
	if e == nil {
		return nil
	}
	return e.Details
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// WithStatus returns a shallow copy of e with the given declared status.
func (e *Error) WithStatus(status int) *Error {
	cp := *e
	cp.Status = status
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one extra detail appended.
// The details slice is always copied.
func (e *Error) WithDetail(d apis.Detail) *Error {
	cp := *e
	ds := make([]apis.Detail, len(e.Details), len(e.Details)+1)
	copy(ds, e.Details)
	cp.Details = append(ds, d)
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// CoreError is an Error raised by a known module with a module-scoped
// numeric error code.
type CoreError struct {
	err    *Error
	module module.Code
	number int
}

// Core builds a CoreError. The module code should be canonical (see
// module.Parse); it is used as-is.
func Core(m module.Code, number, status int, msg string, opts ...Option) *CoreError {
	return &CoreError{
		err:    E(status, msg, opts...),
		module: m,
		number: number,
	}
}

// Error implements the built-in error interface.
func (e *CoreError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.err.Error()
}

// StatusCode implements apis.AppError.
func (e *CoreError) StatusCode() int {
	if e == nil {
		return http.StatusInternalServerError
	}
	return e.err.StatusCode()
}

// ModuleCode implements apis.CodedError.
func (e *CoreError) ModuleCode() string {
	if e == nil {
		return ""
	}
	return e.module.String()
}

// ErrorCode implements apis.CodedError.
func (e *CoreError) ErrorCode() int {
	if e == nil {
		return 0
	}
	return e.number
}

// ErrorDetails implements apis.DetailedError.
func (e *CoreError) ErrorDetails() []apis.Detail {
	if e == nil {
		return nil
	}
	return e.err.ErrorDetails()
}

// Unwrap exposes the base Error, so errors.As(err, **Error) and the cause
// chain both keep working.
func (e *CoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Base returns the underlying Error without module information.
func (e *CoreError) Base() *Error {
	if e == nil {
		return nil
	}
	return e.err
}
