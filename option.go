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
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/status"
)

// Option configures a single outcome construction.
type Option func(*config)

// config collects the optional fields of one construction.
type config struct {
	message    string
	hasMessage bool
	err        apis.AppError
	status     status.Class
}

// WithMessage sets the outcome message, replacing both the kind's default
// and the text of an error passed with WithError.
func WithMessage(msg string) Option {
	return func(c *config) {
		c.message = msg
		c.hasMessage = true
	}
}

// WithError derives the failure from a structured application error: the
// message becomes err.Error(), the code is derived when err implements
// apis.CodedError, and for Failure the class is the one err declares.
//
// A nil err is ignored. Success ignores this option.
func WithError(err apis.AppError) Option {
	return func(c *config) {
		if err != nil {
			c.err = err
		}
	}
}

// WithStatus overrides the class of a Failure, including one derived from
// an error. Kinds with a fixed class (NotFound, Unauthorized, Forbidden,
// InternalServerError, Success) ignore it, as do status.OK and unknown
// classes.
func WithStatus(cl status.Class) Option {
	return func(c *config) {
		if cl.Known() && cl != status.OK {
			c.status = cl
		}
	}
}
