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
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/status"
	"github.com/zeebo/errs"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"
)

// ConfigError is the error class of every policy loading failure.
var ConfigError = errs.Class("mapper: config")

// Config is a status policy as read from YAML:
//
//	http:
//	  bad_request: 422
//	grpc:
//	  bad_request: FAILED_PRECONDITION
//	  not_found: 5
//	fallback:
//	  http: 400
//	  grpc: INVALID_ARGUMENT
//
// Keys of the http and grpc maps are status classes (normalized with
// status.Parse). gRPC codes may be given as numbers or canonical names.
// Entries become overrides; nothing in a policy can remove a default.
type Config struct {
	HTTP     map[string]int      `yaml:"http"`
	GRPC     map[string]GRPCCode `yaml:"grpc"`
	Fallback FallbackConfig      `yaml:"fallback"`
}

// FallbackConfig holds the optional fallback statuses of a policy.
type FallbackConfig struct {
	HTTP int       `yaml:"http"`
	GRPC *GRPCCode `yaml:"grpc"`
}

// GRPCCode is a gRPC status code that decodes from either a number or a
// canonical name such as "NOT_FOUND" (case-insensitive, '-' allowed).
type GRPCCode codes.Code

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *GRPCCode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: gRPC code must be a scalar", value.Line)
	}
	raw := value.Value
	if value.ShortTag() != "!!int" {
		name := strings.ToUpper(strings.TrimSpace(raw))
		name = strings.ReplaceAll(name, "-", "_")
		raw = strconv.Quote(name)
	}
	var c codes.Code
	if err := c.UnmarshalJSON([]byte(raw)); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*g = GRPCCode(c)
	return nil
}

// LoadConfig decodes a YAML policy. Unknown top-level keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, ConfigError.Wrap(err)
	}
	return cfg, nil
}

// LoadFile reads and decodes a YAML policy file.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, ConfigError.Wrap(err)
	}
	defer func() { _ = f.Close() }()
	return LoadConfig(f)
}

// Options converts the policy into mapper options. Class keys are parsed
// and validated here; statuses are validated by New.
func (c Config) Options() ([]Option, error) {
	var opts []Option

	for _, key := range sortedKeys(c.HTTP) {
		cl, err := status.Parse(key)
		if err != nil {
			return nil, ConfigError.Wrap(fmt.Errorf("http.%s: %w", key, err))
		}
		opts = append(opts, WithHTTPOverride(cl, c.HTTP[key]))
	}
	for _, key := range sortedKeys(c.GRPC) {
		cl, err := status.Parse(key)
		if err != nil {
			return nil, ConfigError.Wrap(fmt.Errorf("grpc.%s: %w", key, err))
		}
		opts = append(opts, WithGRPCOverride(cl, int(c.GRPC[key])))
	}
	if c.Fallback.HTTP != 0 {
		opts = append(opts, WithHTTPFallback(c.Fallback.HTTP))
	}
	if c.Fallback.GRPC != nil {
		opts = append(opts, WithGRPCFallback(int(*c.Fallback.GRPC)))
	}
	return opts, nil
}

// FromConfig is a convenience wrapper: Options followed by New.
func FromConfig(c Config) (apis.Mapper, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	m, err := New(opts...)
	if err != nil {
		return nil, ConfigError.Wrap(err)
	}
	return m, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
