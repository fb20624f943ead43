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

package adapter

import (
	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/status"
)

// ToView converts a non-generic outcome into its response body.
//
// Successful (ok) outcomes expose message and succeeded; every other class
// also exposes code, even when it is empty.
func ToView(r dresult.Result) apis.View {
	return apis.View{
		Message:   r.Message(),
		Succeeded: r.Succeeded(),
		Code:      codeField(r),
	}
}

// ToDataView converts a generic outcome into its response body. The data
// field is always present; failures carry the zero value of T.
func ToDataView[T any](o dresult.Of[T]) apis.DataView[T] {
	return apis.DataView[T]{
		Message:   o.Message(),
		Data:      o.Data(),
		Succeeded: o.Succeeded(),
		Code:      codeField(o.Result()),
	}
}

// ToDescriptor converts an outcome together with its resolved transport
// status into a flat Descriptor for logs and gRPC details.
func ToDescriptor(r dresult.Result, st apis.Status) apis.Descriptor {
	return apis.Descriptor{
		Class:      string(r.Status()),
		Code:       r.Code(),
		Message:    r.Message(),
		Succeeded:  r.Succeeded(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
}

func codeField(r dresult.Result) *string {
	if r.Status() == status.OK {
		return nil
	}
	c := r.Code()
	return &c
}
