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

// Descriptor is a flat, transport-friendly description of an outcome
// together with its resolved transport statuses.
//
// It is intended for structured logging and for gRPC status details; it is
// never sent as an HTTP body.
type Descriptor struct {
	// Class is the canonical outcome class, e.g. "not_found".
	Class string `json:"class"`

	// Code is the "<module>-<errorCode>" code, empty when not derived from
	// a coded application error.
	Code string `json:"code,omitempty"`

	// Message is the human-readable outcome message.
	Message string `json:"message,omitempty"`

	// Succeeded mirrors the outcome's success flag.
	Succeeded bool `json:"succeeded"`

	// HTTPStatus is the resolved HTTP status.
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code (as integer).
	GRPCCode int `json:"grpc_code,omitempty"`
}
