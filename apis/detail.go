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

// Detail represents a single structured piece of information attached to an
// application error.
//
// Details never appear in the HTTP body of an outcome (that contract is
// fixed), but they are propagated into gRPC status details and logs.
type Detail struct {
	// Type is a short classifier of the detail, e.g. "field" or "conflict".
	Type string `json:"type,omitempty"`

	// Field carries the logical path to the failing field, e.g. "user.email".
	Field string `json:"field,omitempty"`

	// Reason is a short, human-friendly explanation, e.g. "required".
	Reason string `json:"reason,omitempty"`

	// Info carries optional extra string data.
	Info map[string]string `json:"info,omitempty"`
}
