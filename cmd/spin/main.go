// Command spin is the Spin interpreter's CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/spin-lang/spin/cmd/spin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
