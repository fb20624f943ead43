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
	"dirpx.dev/dresult/status"
	"google.golang.org/grpc/codes"
)

type builder struct {
	// httpDefaults holds per-class HTTP defaults (library defaults plus
	// user adjustments).
	httpDefaults map[status.Class]int
	// grpcDefaults holds per-class gRPC defaults as ints; converted in New().
	grpcDefaults map[status.Class]int

	// httpOverride holds exact per-class HTTP overrides (higher than defaults).
	httpOverride map[status.Class]int
	// grpcOverride holds exact per-class gRPC overrides as ints.
	grpcOverride map[status.Class]int

	fallbackHTTP int
	fallbackGRPC codes.Code

	// classes records every class mentioned by an option so New can reject
	// unknown ones.
	classes []status.Class
}

// newBuilder creates an empty builder with maps pre-sized to hold the
// library defaults.
func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[status.Class]int, len(defaultHTTP)),
		grpcDefaults: make(map[status.Class]int, len(defaultGRPC)),
		httpOverride: make(map[status.Class]int),
		grpcOverride: make(map[status.Class]int),
		fallbackHTTP: fallbackHTTP,
		fallbackGRPC: fallbackGRPC,
	}
}

func (b *builder) touch(c status.Class) {
	b.classes = append(b.classes, c)
}
