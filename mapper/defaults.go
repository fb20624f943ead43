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

package mapper

import (
	"net/http"

	"dirpx.dev/dresult/status"
	"google.golang.org/grpc/codes"
)

// defaultHTTP is the HTTP half of the dresult response contract.
var defaultHTTP = map[status.Class]int{
	status.OK:                  http.StatusOK,
	status.BadRequest:          http.StatusBadRequest,
	status.NotFound:            http.StatusNotFound,
	status.Unauthorized:        http.StatusUnauthorized,
	status.Forbidden:           http.StatusForbidden,
	status.InternalServerError: http.StatusInternalServerError,
}

// defaultGRPC aligns each class with its canonical gRPC code.
var defaultGRPC = map[status.Class]codes.Code{
	status.OK:                  codes.OK,
	status.BadRequest:          codes.InvalidArgument,
	status.NotFound:            codes.NotFound,
	status.Unauthorized:        codes.Unauthenticated, // gRPC's "unauthorized" is about identity.
	status.Forbidden:           codes.PermissionDenied,
	status.InternalServerError: codes.Internal,
}

// Fallbacks for classes that have no default, e.g. the empty class of a
// zero-value outcome. They mirror the "anything else" row of the contract.
const (
	fallbackHTTP = http.StatusBadRequest
	fallbackGRPC = codes.InvalidArgument
)
