// SPDX-License-Identifier: MIT

// Command dpsolve evaluates dynamic-programming problem instances from YAML
// files with any of the three dpkit strategies.
//
//	dpsolve list
//	dpsolve run    -f instances.yaml --strategy top-down --cache sparse
//	dpsolve verify -f instances.yaml -j 4 --metrics
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:     "dpsolve",
		HelpName: "dpsolve",
		Usage:    "solve dynamic-programming instances by exhaustive search, memoization or tabulation",
		Commands: []*cli.Command{
			&listCommand,
			&runCommand,
			&verifyCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
