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
	"encoding/json"
	"net/http"
	"testing"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/apperr"
	"dirpx.dev/dresult/module"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestToView_FieldPresence(t *testing.T) {
	assert.Equal(t, `{"message":"OK","succeeded":true}`, marshal(t, ToView(dresult.Success())))
	assert.Equal(t, `{"message":"Resource not found.","succeeded":false,"code":""}`, marshal(t, ToView(dresult.NotFound())))

	err := apperr.Core(module.MustParse("auth"), 1001, http.StatusUnauthorized, "token expired")
	assert.Equal(t, `{"message":"token expired","succeeded":false,"code":"AUTH-1001"}`, marshal(t, ToView(dresult.FromError(err))))
}

func TestToDataView_FieldPresence(t *testing.T) {
	assert.Equal(t, `{"message":"fetched","data":42,"succeeded":true}`,
		marshal(t, ToDataView(dresult.SuccessOf(42, dresult.WithMessage("fetched")))))
	assert.Equal(t, `{"message":"Forbidden","data":null,"succeeded":false,"code":""}`,
		marshal(t, ToDataView(dresult.ForbiddenOf[*struct{}]())))
	assert.Equal(t, `{"message":"","data":0,"succeeded":false,"code":""}`,
		marshal(t, ToDataView(dresult.FailureOf[int]())))
}

func TestToDescriptor(t *testing.T) {
	err := apperr.Core(module.MustParse("users"), 4, http.StatusNotFound, "missing")
	d := ToDescriptor(dresult.FromError(err), apis.Status{HTTP: 404, GRPC: codes.NotFound})
	assert.Equal(t, apis.Descriptor{
		Class:      "not_found",
		Code:       "USERS-4",
		Message:    "missing",
		Succeeded:  false,
		HTTPStatus: 404,
		GRPCCode:   int(codes.NotFound),
	}, d)
}
