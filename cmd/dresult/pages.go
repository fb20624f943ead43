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

	"dirpx.dev/dresult/page"
	"github.com/spf13/cobra"
)

func newPagesCmd(a *app) *cobra.Command {
	var (
		total   int64
		size    int
		current int
	)

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Compute pagination metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := page.New[struct{}](nil, total, size, current)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total pages: %d\n", p.TotalPages())
			if current > 0 {
				fmt.Fprintf(out, "has next: %t\n", p.HasNext())
				fmt.Fprintf(out, "has previous: %t\n", p.HasPrevious())
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&total, "total", 0, "total number of items")
	cmd.Flags().IntVar(&size, "size", 0, "page size")
	cmd.Flags().IntVar(&current, "page", 0, "current page (1-based)")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}
