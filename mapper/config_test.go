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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirpx.dev/dresult/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

const policy = `
http:
  Bad-Request: 422
  internal_server_error: 503
grpc:
  bad_request: failed-precondition
  not_found: 5
fallback:
  http: 500
  grpc: UNKNOWN
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(policy))
	require.NoError(t, err)

	assert.Equal(t, 422, cfg.HTTP["Bad-Request"])
	assert.Equal(t, GRPCCode(codes.FailedPrecondition), cfg.GRPC["bad_request"])
	assert.Equal(t, GRPCCode(codes.NotFound), cfg.GRPC["not_found"])
	require.NotNil(t, cfg.Fallback.GRPC)
	assert.Equal(t, GRPCCode(codes.Unknown), *cfg.Fallback.GRPC)

	m, err := FromConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, 422, m.HTTPStatus(status.BadRequest))
	assert.Equal(t, codes.FailedPrecondition, m.GRPCStatus(status.BadRequest))
	assert.Equal(t, 503, m.HTTPStatus(status.InternalServerError))
	assert.Equal(t, 200, m.HTTPStatus(status.OK))
	assert.Equal(t, 500, m.HTTPStatus(status.Empty))
	assert.Equal(t, codes.Unknown, m.GRPCStatus(status.Empty))
	assert.Contains(t, m.Explain(status.BadRequest), "source=override")
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	m, err := FromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, 404, m.HTTPStatus(status.NotFound))
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown top-level key", "routes: {}\n"},
		{"unknown grpc name", "grpc:\n  ok: NOPE\n"},
		{"grpc out of range", "grpc:\n  ok: 42\n"},
		{"grpc not scalar", "grpc:\n  ok: [1]\n"},
		{"http not int", "http:\n  ok: fine\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.True(t, ConfigError.Has(err))
		})
	}
}

func TestFromConfig_Errors(t *testing.T) {
	_, err := FromConfig(Config{HTTP: map[string]int{"teapot": 418}})
	require.Error(t, err)
	assert.True(t, ConfigError.Has(err))
	assert.ErrorIs(t, err, status.ErrClassInvalid)

	_, err = FromConfig(Config{HTTP: map[string]int{"ok": 99}})
	require.Error(t, err)
	assert.True(t, ConfigError.Has(err))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(policy), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, cfg.HTTP, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, ConfigError.Has(err))
}
