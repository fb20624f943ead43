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

// View is the body of an HTTP response produced from a non-generic outcome.
//
// Field order and presence are part of the wire contract:
//
//	ok:     {"message": ..., "succeeded": ...}
//	others: {"message": ..., "succeeded": ..., "code": ...}
//
// Code is a pointer so that an empty code is still emitted for failures
// while being omitted entirely for successes.
type View struct {
	Message   string  `json:"message"`
	Succeeded bool    `json:"succeeded"`
	Code      *string `json:"code,omitempty"`
}

// DataView is the body of an HTTP response produced from a generic outcome.
// Data is always present; on failures it holds the zero value of T.
type DataView[T any] struct {
	Message   string  `json:"message"`
	Data      T       `json:"data"`
	Succeeded bool    `json:"succeeded"`
	Code      *string `json:"code,omitempty"`
}
