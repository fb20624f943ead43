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

package grpcx

import (
	"context"
	"errors"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/adapter"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/mapper"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Body is the decoded form of the structpb detail attached by Error.
type Body struct {
	Message   string
	Succeeded bool
	Code      string
	Status    string
	// HTTPStatus and GRPCCode are the transport statuses the mapper
	// resolved for Status.
	HTTPStatus int
	GRPCCode   int
	Details    []apis.Detail
}

// Error converts a failed outcome into a gRPC status error. Successful
// outcomes yield nil.
//
// The status code is resolved via m (mapper.Default() when nil). The outcome
// fields are attached as a google.protobuf.Struct detail; if that cannot be
// built the bare status is returned.
func Error(m apis.Mapper, r dresult.Result) error {
	if r.Succeeded() {
		return nil
	}
	st, _ := statusOf(m, r, nil)
	return st.Err()
}

// statusOf builds the status for a failed outcome together with the
// descriptor it carries.
func statusOf(m apis.Mapper, r dresult.Result, details []apis.Detail) (*gstatus.Status, apis.Descriptor) {
	if m == nil {
		m = mapper.Default()
	}

	d := adapter.ToDescriptor(r, m.Status(r.Status()))
	base := gstatus.New(m.GRPCStatus(r.Status()), r.Message())

	fields := map[string]any{
		"message":     d.Message,
		"succeeded":   d.Succeeded,
		"code":        d.Code,
		"status":      d.Class,
		"http_status": d.HTTPStatus,
		"grpc_code":   d.GRPCCode,
	}
	if len(details) > 0 {
		list := make([]any, 0, len(details))
		for _, d := range details {
			list = append(list, detailFields(d))
		}
		fields["details"] = list
	}

	// Try to attach the body as details. If it fails, return base.
	if body, err := structpb.NewStruct(fields); err == nil {
		if with, err := base.WithDetails(body); err == nil {
			return with, d
		}
	}
	return base, d
}

func detailFields(d apis.Detail) map[string]any {
	out := map[string]any{"type": d.Type}
	if d.Field != "" {
		out["field"] = d.Field
	}
	if d.Reason != "" {
		out["reason"] = d.Reason
	}
	if len(d.Info) > 0 {
		info := make(map[string]any, len(d.Info))
		for k, v := range d.Info {
			info[k] = v
		}
		out["info"] = info
	}
	return out
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// apis.AppError values returned by handlers into gRPC status errors via
// dresult.FromError.
//
// Errors that do not implement apis.AppError are returned as-is. Details of
// errors implementing apis.DetailedError are carried in the status body.
func UnaryServerInterceptor(m apis.Mapper, logger *zap.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var ae apis.AppError
		if !errors.As(err, &ae) {
			// Not ours, return as-is.
			return nil, err
		}

		r := dresult.FromError(ae)

		var details []apis.Detail
		var de apis.DetailedError
		if errors.As(err, &de) {
			details = de.ErrorDetails()
		}

		st, d := statusOf(m, r, details)
		logger.Info("grpcx: handler failed",
			zap.String("method", info.FullMethod),
			zap.Reflect("descriptor", d),
			zap.Stringer("grpc_code", st.Code()),
		)
		return nil, st.Err()
	}
}

// ExtractBody pulls the outcome body out of a gRPC error produced by Error or
// UnaryServerInterceptor. Useful in tests and client code.
func ExtractBody(err error) (Body, bool) {
	if err == nil {
		return Body{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return Body{}, false
	}
	for _, d := range st.Proto().GetDetails() {
		if b, ok := decode(d); ok {
			return b, true
		}
	}
	return Body{}, false
}

func decode(a *anypb.Any) (Body, bool) {
	var s structpb.Struct
	if err := a.UnmarshalTo(&s); err != nil {
		return Body{}, false
	}

	f := s.GetFields()
	if _, ok := f["succeeded"]; !ok {
		return Body{}, false
	}

	b := Body{
		Message:   f["message"].GetStringValue(),
		Succeeded: f["succeeded"].GetBoolValue(),
		Code:      f["code"].GetStringValue(),
		Status:    f["status"].GetStringValue(),

		HTTPStatus: int(f["http_status"].GetNumberValue()),
		GRPCCode:   int(f["grpc_code"].GetNumberValue()),
	}
	for _, v := range f["details"].GetListValue().GetValues() {
		df := v.GetStructValue().GetFields()
		d := apis.Detail{
			Type:   df["type"].GetStringValue(),
			Field:  df["field"].GetStringValue(),
			Reason: df["reason"].GetStringValue(),
		}
		if info := df["info"].GetStructValue().GetFields(); len(info) > 0 {
			d.Info = make(map[string]string, len(info))
			for k, iv := range info {
				d.Info[k] = iv.GetStringValue()
			}
		}
		b.Details = append(b.Details, d)
	}
	return b, true
}
