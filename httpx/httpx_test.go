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

package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apperr"
	"dirpx.dev/dresult/mapper"
	"dirpx.dev/dresult/module"
	"dirpx.dev/dresult/page"
	"dirpx.dev/dresult/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteResult_Table(t *testing.T) {
	cases := []struct {
		name     string
		r        dresult.Result
		wantCode int
		wantBody string
	}{
		{"ok", dresult.Success(), 200, `{"message":"OK","succeeded":true}`},
		{"not_found", dresult.NotFound(), 404, `{"message":"Resource not found.","succeeded":false,"code":""}`},
		{"unauthorized", dresult.Unauthorized(), 401, `{"message":"Unauthorized","succeeded":false,"code":""}`},
		{"forbidden", dresult.Forbidden(), 403, `{"message":"Forbidden","succeeded":false,"code":""}`},
		{"internal", dresult.InternalServerError(), 500, `{"message":"Internal Server Error","succeeded":false,"code":""}`},
		{"bad_request", dresult.Failure(dresult.WithMessage("bad input")), 400, `{"message":"bad input","succeeded":false,"code":""}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Writer{}.WriteResult(rec, tc.r)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Equal(t, ContentType, rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
			assert.Equal(t, tc.wantBody, rec.Body.String(), "field order")
		})
	}
}

func TestWriteOf_Table(t *testing.T) {
	cases := []struct {
		name     string
		o        dresult.Of[int]
		wantCode int
		wantBody string
	}{
		{"ok", dresult.SuccessOf(42, dresult.WithMessage("fetched")), 200, `{"message":"fetched","data":42,"succeeded":true}`},
		{"not_found", dresult.NotFoundOf[int](), 404, `{"message":"Resource not found.","data":0,"succeeded":false,"code":""}`},
		{"unauthorized", dresult.UnauthorizedOf[int](), 401, `{"message":"Unauthorized","data":0,"succeeded":false,"code":""}`},
		{"forbidden", dresult.ForbiddenOf[int](), 403, `{"message":"Forbidden","data":0,"succeeded":false,"code":""}`},
		{"internal", dresult.InternalServerErrorOf[int](), 500, `{"message":"Internal Server Error","data":0,"succeeded":false,"code":""}`},
		{"bad_request", dresult.FailureOf[int](), 400, `{"message":"","data":0,"succeeded":false,"code":""}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteOf(rec, Writer{}, tc.o)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Equal(t, tc.wantBody, rec.Body.String())
		})
	}
}

func TestWriteResult_CodedError(t *testing.T) {
	err := apperr.Core(module.MustParse("billing"), 12, http.StatusForbidden, "card blocked")
	rec := httptest.NewRecorder()
	Writer{}.WriteResult(rec, dresult.FromError(err))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, `{"message":"card blocked","succeeded":false,"code":"BILLING-12"}`, rec.Body.String())
}

func TestWriteResult_UsesMapper(t *testing.T) {
	m, err := mapper.New(mapper.WithHTTPOverride(status.BadRequest, http.StatusUnprocessableEntity))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	Writer{Mapper: m}.WriteResult(rec, dresult.Failure())
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestWritePage(t *testing.T) {
	p := page.MustNew([]string{"a", "b"}, 5, 2, 1)
	rec := httptest.NewRecorder()
	WritePage(rec, Writer{}, p)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		`{"message":"OK","data":{"items":["a","b"],"totalCount":5,"pageSize":2,"currentPage":1,"totalPages":3,"itemsCount":2},"succeeded":true}`,
		rec.Body.String())
}

func TestWriteOf_MarshalFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	rec := httptest.NewRecorder()
	WriteOf(rec, Writer{Logger: zap.New(core)}, dresult.SuccessOf(make(chan int)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("httpx: encode response body").Len())
}

func TestWriteResult_LogsServerFailures(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	w := Writer{Logger: zap.New(core)}

	w.WriteResult(httptest.NewRecorder(), dresult.NotFound())
	assert.Zero(t, logs.Len())

	w.WriteResult(httptest.NewRecorder(), dresult.InternalServerError())
	entries := logs.FilterMessage("httpx: server failure").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(500), entries[0].ContextMap()["http_status"])
}

func TestBody(t *testing.T) {
	v := Body(dresult.Success())
	assert.Nil(t, v.Code)
	assert.True(t, v.Succeeded)

	dv := BodyOf(dresult.NotFoundOf[string]())
	require.NotNil(t, dv.Code)
	assert.Equal(t, "", *dv.Code)
	assert.Equal(t, "", dv.Data)
}

func TestWriteResult_DeclaredStatusOutsideTable(t *testing.T) {
	for _, declared := range []int{http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusConflict} {
		rec := httptest.NewRecorder()
		Writer{}.WriteResult(rec, dresult.FromError(apperr.E(declared, "upstream")))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "declared %d", declared)
	}
}
