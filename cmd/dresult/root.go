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
	"log"
	"time"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/mapper"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by all commands.
type app struct {
	logger     *zap.Logger
	configPath string
	verbose    bool
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "dresult",
		Short:        "Inspect outcome classification and rendering",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.logger == nil {
				a.logger = newLogger(a.verbose)
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "status policy file (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newExplainCmd(a),
		newPagesCmd(a),
		newRenderCmd(a),
	)
	return root
}

// mapper returns the mapper selected by --config, or the default one.
func (a *app) mapper() (apis.Mapper, error) {
	if a.configPath == "" {
		return mapper.Default(), nil
	}
	cfg, err := mapper.LoadFile(a.configPath)
	if err != nil {
		return nil, err
	}
	m, err := mapper.FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded status policy", zap.String("path", a.configPath))
	return m, nil
}

func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	cfg.OutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}
	return logger
}
