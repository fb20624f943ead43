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

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/status"
)

// Default messages per outcome kind.
const (
	DefaultSuccessMessage             = "OK"
	DefaultFailureMessage             = ""
	DefaultNotFoundMessage            = "Resource not found."
	DefaultUnauthorizedMessage        = "Unauthorized"
	DefaultForbiddenMessage           = "Forbidden"
	DefaultInternalServerErrorMessage = "Internal Server Error"
)

// kind identifies one factory entry point.
type kind struct {
	succeeded bool
	class     status.Class
	message   string
	// forced kinds keep their class even when built from an error.
	forced bool
}

var (
	kindSuccess             = kind{true, status.OK, DefaultSuccessMessage, true}
	kindFailure             = kind{false, status.BadRequest, DefaultFailureMessage, false}
	kindNotFound            = kind{false, status.NotFound, DefaultNotFoundMessage, true}
	kindUnauthorized        = kind{false, status.Unauthorized, DefaultUnauthorizedMessage, true}
	kindForbidden           = kind{false, status.Forbidden, DefaultForbiddenMessage, true}
	kindInternalServerError = kind{false, status.InternalServerError, DefaultInternalServerErrorMessage, true}
)

// build is the single derivation routine behind every constructor of both
// Result and Of[T]. It only fails when params are given and the message
// cannot be formatted with them.
func build(k kind, params []string, opts []Option) (Result, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	r := Result{
		succeeded: k.succeeded,
		message:   k.message,
		status:    k.class,
	}

	if cfg.err != nil && !r.succeeded {
		r.message = cfg.err.Error()
		r.code = codeOf(cfg.err)
		if !k.forced {
			r.status = status.FromErrorHTTP(cfg.err.StatusCode())
		}
	}
	if cfg.hasMessage {
		r.message = cfg.message
	}
	if cfg.status != status.Empty && !k.forced {
		r.status = cfg.status
	}

	msg, err := Format(r.message, params...)
	if err != nil {
		return Result{}, err
	}
	r.message = msg
	return r, nil
}

// buildOf wraps build with an optional payload. The payload is attached
// only to successes.
func buildOf[T any](k kind, data T, params []string, opts []Option) (Of[T], error) {
	r, err := build(k, params, opts)
	if err != nil {
		return Of[T]{}, err
	}
	if !r.succeeded {
		return Of[T]{base: r}, nil
	}
	return Of[T]{base: r, data: data, hasData: true}, nil
}

// codeOf derives "<module>-<errorCode>" from errors carrying the coded
// capability. Only err itself is inspected, not its cause chain. Errors
// without a module code yield no code.
func codeOf(err apis.AppError) string {
	coded, ok := err.(apis.CodedError)
	if !ok || coded.ModuleCode() == "" {
		return ""
	}
	return fmt.Sprintf("%s-%d", coded.ModuleCode(), coded.ErrorCode())
}

// must unwraps constructions that cannot fail because no parameters were
// given.
func must[R any](r R, err error) R {
	if err != nil {
		panic(err)
	}
	return r
}

// Success returns a successful Result. Default message: "OK".
func Success(opts ...Option) Result {
	return must(build(kindSuccess, nil, opts))
}

// Failure returns a failed Result classified as bad_request, or as the
// class declared by the error passed with WithError. Default message: "".
func Failure(opts ...Option) Result {
	return must(build(kindFailure, nil, opts))
}

// FromError is shorthand for Failure(WithError(err), opts...).
func FromError(err apis.AppError, opts ...Option) Result {
	return must(build(kindFailure, nil, append([]Option{WithError(err)}, opts...)))
}

// Failuref returns a bad_request Result whose message is template formatted
// positionally with params (see Format).
func Failuref(template string, params ...string) (Result, error) {
	return build(kindFailure, params, []Option{WithMessage(template)})
}

// FromErrorf returns a failure derived from err whose description is used
// as a template and formatted positionally with params (see Format).
func FromErrorf(err apis.AppError, params ...string) (Result, error) {
	return build(kindFailure, params, []Option{WithError(err)})
}

// NotFound returns a not_found Result. Default message: "Resource not found.".
// With WithError the class stays not_found whatever the error declares.
func NotFound(opts ...Option) Result {
	return must(build(kindNotFound, nil, opts))
}

// Unauthorized returns an unauthorized Result. Default message: "Unauthorized".
func Unauthorized(opts ...Option) Result {
	return must(build(kindUnauthorized, nil, opts))
}

// Forbidden returns a forbidden Result. Default message: "Forbidden".
func Forbidden(opts ...Option) Result {
	return must(build(kindForbidden, nil, opts))
}

// InternalServerError returns an internal_server_error Result.
// Default message: "Internal Server Error".
func InternalServerError(opts ...Option) Result {
	return must(build(kindInternalServerError, nil, opts))
}

// SuccessOf returns a successful Of[T] carrying data.
func SuccessOf[T any](data T, opts ...Option) Of[T] {
	return must(buildOf(kindSuccess, data, nil, opts))
}

// FailureOf is the Of[T] counterpart of Failure.
func FailureOf[T any](opts ...Option) Of[T] {
	var zero T
	return must(buildOf(kindFailure, zero, nil, opts))
}

// FromErrorOf is the Of[T] counterpart of FromError.
func FromErrorOf[T any](err apis.AppError, opts ...Option) Of[T] {
	var zero T
	return must(buildOf(kindFailure, zero, nil, append([]Option{WithError(err)}, opts...)))
}

// FailurefOf is the Of[T] counterpart of Failuref.
func FailurefOf[T any](template string, params ...string) (Of[T], error) {
	var zero T
	return buildOf(kindFailure, zero, params, []Option{WithMessage(template)})
}

// FromErrorfOf is the Of[T] counterpart of FromErrorf.
func FromErrorfOf[T any](err apis.AppError, params ...string) (Of[T], error) {
	var zero T
	return buildOf(kindFailure, zero, params, []Option{WithError(err)})
}

// NotFoundOf is the Of[T] counterpart of NotFound.
func NotFoundOf[T any](opts ...Option) Of[T] {
	var zero T
	return must(buildOf(kindNotFound, zero, nil, opts))
}

// UnauthorizedOf is the Of[T] counterpart of Unauthorized.
func UnauthorizedOf[T any](opts ...Option) Of[T] {
	var zero T
	return must(buildOf(kindUnauthorized, zero, nil, opts))
}

// ForbiddenOf is the Of[T] counterpart of Forbidden.
func ForbiddenOf[T any](opts ...Option) Of[T] {
	var zero T
	return must(buildOf(kindForbidden, zero, nil, opts))
}

// InternalServerErrorOf is the Of[T] counterpart of InternalServerError.
func InternalServerErrorOf[T any](opts ...Option) Of[T] {
	var zero T
	return must(buildOf(kindInternalServerError, zero, nil, opts))
}

// Lift converts a failed Result into a failed Of[T] with the same fields.
// A successful Result cannot be lifted because it has no payload; Lift
// reports false in that case.
func Lift[T any](r Result) (Of[T], bool) {
	if r.succeeded {
		return Of[T]{}, false
	}
	return Of[T]{base: CopyFrom(r)}, true
}
