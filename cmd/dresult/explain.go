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

	"dirpx.dev/dresult/status"
	"github.com/spf13/cobra"
)

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <class>",
		Short: "Show how a status class resolves to HTTP and gRPC codes",
		Long: `Prints the resolution trace of the mapper for one status class.

Unknown classes are accepted and show the fallback resolution.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.mapper()
			if err != nil {
				return err
			}
			c := status.Class(status.Normalize(args[0]))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), m.Explain(c))
			return err
		},
	}
}
