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
	"fmt"

	"dirpx.dev/dresult/status"
	"go.uber.org/zap/zapcore"
)

var (
	_ zapcore.ObjectMarshaler = Result{}
	_ fmt.Stringer            = Result{}
)

// Result is an immutable outcome without a payload.
//
// The zero value is a failure with an empty class; use the constructors in
// this package to build meaningful outcomes.
type Result struct {
	succeeded bool
	message   string
	code      string
	status    status.Class
}

// Succeeded reports whether the outcome is a success.
func (r Result) Succeeded() bool { return r.succeeded }

// Failed reports whether the outcome is a failure.
func (r Result) Failed() bool { return !r.succeeded }

// Message returns the human-readable outcome message.
func (r Result) Message() string { return r.message }

// Code returns the "<module>-<errorCode>" code, or "" when the outcome was
// not derived from a coded application error.
func (r Result) Code() string { return r.code }

// Status returns the protocol-agnostic class of the outcome.
func (r Result) Status() status.Class { return r.status }

// String renders the outcome for logs:
//
//	ok: OK
//	not_found[USERS-1004]: user 42 not found
func (r Result) String() string {
	if r.code != "" {
		return fmt.Sprintf("%s[%s]: %s", r.status, r.code, r.message)
	}
	return fmt.Sprintf("%s: %s", r.status, r.message)
}

// MarshalLogObject implements zapcore.ObjectMarshaler so outcomes can be
// logged with zap.Object.
func (r Result) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("succeeded", r.succeeded)
	enc.AddString("status", string(r.status))
	enc.AddString("message", r.message)
	if r.code != "" {
		enc.AddString("code", r.code)
	}
	return nil
}

// CopyFrom returns a new Result with the same field values as r.
//
// Results are values, so this is equivalent to assignment; it exists to
// normalize outcomes obtained through interfaces or from an Of[T] (see
// Of.Result) into the base shape explicitly.
func CopyFrom(r Result) Result {
	return Result{
		succeeded: r.succeeded,
		message:   r.message,
		code:      r.code,
		status:    r.status,
	}
}

// Of is an immutable outcome that carries a payload of type T on success.
//
// A failed Of never carries a payload: Data returns the zero value of T and
// HasData returns false.
type Of[T any] struct {
	base    Result
	data    T
	hasData bool
}

// Result returns the outcome without its payload.
func (o Of[T]) Result() Result { return CopyFrom(o.base) }

// Succeeded reports whether the outcome is a success.
func (o Of[T]) Succeeded() bool { return o.base.succeeded }

// Failed reports whether the outcome is a failure.
func (o Of[T]) Failed() bool { return !o.base.succeeded }

// Message returns the human-readable outcome message.
func (o Of[T]) Message() string { return o.base.message }

// Code returns the "<module>-<errorCode>" code, or "".
func (o Of[T]) Code() string { return o.base.code }

// Status returns the protocol-agnostic class of the outcome.
func (o Of[T]) Status() status.Class { return o.base.status }

// Data returns the payload, or the zero value of T for failures.
func (o Of[T]) Data() T { return o.data }

// HasData reports whether the outcome carries a payload.
func (o Of[T]) HasData() bool { return o.hasData }

// Get returns the payload and whether it is present.
func (o Of[T]) Get() (T, bool) { return o.data, o.hasData }

// String renders the outcome for logs. The payload is not included.
func (o Of[T]) String() string { return o.base.String() }

// MarshalLogObject implements zapcore.ObjectMarshaler. The payload is not
// logged, only its presence.
func (o Of[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := o.base.MarshalLogObject(enc); err != nil {
		return err
	}
	enc.AddBool("has_data", o.hasData)
	return nil
}

// CopyOf returns a new Of[T] with the same field values as o, payload
// included.
func CopyOf[T any](o Of[T]) Of[T] {
	return Of[T]{
		base:    CopyFrom(o.base),
		data:    o.data,
		hasData: o.hasData,
	}
}
