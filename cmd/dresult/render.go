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

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/grpcx"
	"dirpx.dev/dresult/httpx"
	"dirpx.dev/dresult/status"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
)

func newRenderCmd(a *app) *cobra.Command {
	var asProto bool

	cmd := &cobra.Command{
		Use:   "render <class> [message]",
		Short: "Print the response an outcome of the given class produces",
		Long: `Builds an outcome of the given status class and prints the HTTP response
the HTTP adapter would send for it. With --proto the gRPC status is printed
instead, as protobuf JSON.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := status.Parse(args[0])
			if err != nil {
				return err
			}

			var opts []dresult.Option
			if len(args) == 2 {
				opts = append(opts, dresult.WithMessage(args[1]))
			}
			r := resultFor(c, opts...)
			a.logger.Debug("rendering outcome", zap.Object("result", r))

			m, err := a.mapper()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asProto {
				err := grpcx.Error(m, r)
				if err == nil {
					_, err = fmt.Fprintln(out, codes.OK)
					return err
				}
				b, err := protojson.Marshal(gstatus.Convert(err).Proto())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			}

			rec := httptest.NewRecorder()
			httpx.Writer{Mapper: m, Logger: a.logger}.WriteResult(rec, r)
			fmt.Fprintf(out, "HTTP %d %s\n", rec.Code, http.StatusText(rec.Code))
			fmt.Fprintf(out, "Content-Type: %s\n\n", rec.Header().Get("Content-Type"))
			_, err = fmt.Fprintln(out, rec.Body.String())
			return err
		},
	}

	cmd.Flags().BoolVar(&asProto, "proto", false, "print the gRPC status as protobuf JSON")
	return cmd
}

// resultFor builds the outcome the dedicated factory of c would return.
func resultFor(c status.Class, opts ...dresult.Option) dresult.Result {
	switch c {
	case status.OK:
		return dresult.Success(opts...)
	case status.NotFound:
		return dresult.NotFound(opts...)
	case status.Unauthorized:
		return dresult.Unauthorized(opts...)
	case status.Forbidden:
		return dresult.Forbidden(opts...)
	case status.InternalServerError:
		return dresult.InternalServerError(opts...)
	default:
		return dresult.Failure(opts...)
	}
}
