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

// Command dresult inspects how outcomes are classified and rendered.
//
//	dresult explain not_found
//	dresult explain bad_request --config policy.yaml
//	dresult pages --total 95 --size 10 --page 3
//	dresult render forbidden "no access to {0}"
package main

import (
	"os"
)

func main() {
	os.Exit(run(&app{}, os.Args[1:]))
}

// run executes the command line and returns the process exit code. The
// logger is flushed before returning on every path.
func run(a *app, args []string) int {
	defer a.sync()

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
