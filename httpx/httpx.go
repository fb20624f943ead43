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
	"encoding/json"
	"net/http"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/adapter"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/mapper"
	"dirpx.dev/dresult/page"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ContentType is the media type of every body the Writer produces.
const ContentType = "application/json"

// Writer is a thin adapter that turns an outcome into an HTTP response using
// the provided status mapper.
//
// The zero value is usable: a nil Mapper falls back to mapper.Default() and
// a nil Logger discards log entries.
type Writer struct {
	Mapper apis.Mapper
	Logger *zap.Logger
}

func (w Writer) mapper() apis.Mapper {
	if w.Mapper == nil {
		return mapper.Default()
	}
	return w.Mapper
}

func (w Writer) logger() *zap.Logger {
	if w.Logger == nil {
		return zap.NewNop()
	}
	return w.Logger
}

// Body returns the view WriteResult would serialize for r.
func Body(r dresult.Result) apis.View { return adapter.ToView(r) }

// BodyOf returns the view WriteOf would serialize for o.
func BodyOf[T any](o dresult.Of[T]) apis.DataView[T] { return adapter.ToDataView(o) }

// WriteResult writes r with the HTTP status its class maps to.
func (w Writer) WriteResult(rw http.ResponseWriter, r dresult.Result) {
	w.write(rw, r, Body(r))
}

// WriteOf writes o, including its data field, with the HTTP status its class
// maps to.
//
// It is a function rather than a method because methods cannot carry type
// parameters.
func WriteOf[T any](rw http.ResponseWriter, w Writer, o dresult.Of[T]) {
	w.write(rw, o.Result(), BodyOf(o))
}

// WritePage writes p as the data of a successful outcome. opts are passed to
// dresult.SuccessOf, so a custom message can be supplied with
// dresult.WithMessage.
func WritePage[T any](rw http.ResponseWriter, w Writer, p page.Paged[T], opts ...dresult.Option) {
	WriteOf(rw, w, dresult.SuccessOf(p, opts...))
}

func (w Writer) write(rw http.ResponseWriter, r dresult.Result, body any) {
	code := w.mapper().HTTPStatus(r.Status())
	log := w.logger()

	b, err := json.Marshal(body)
	if err != nil {
		log.Error("httpx: encode response body",
			zap.Object("result", r),
			zap.Error(err),
		)
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	if code >= http.StatusInternalServerError {
		log.Error("httpx: server failure", zap.Object("result", r), zap.Int("http_status", code))
	} else if ce := log.Check(zapcore.DebugLevel, "httpx: write result"); ce != nil {
		ce.Write(zap.Object("result", r), zap.Int("http_status", code))
	}

	rw.Header().Set("Content-Type", ContentType)
	rw.WriteHeader(code)
	if _, err := rw.Write(b); err != nil {
		log.Warn("httpx: write response body", zap.Error(err))
	}
}
