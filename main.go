// durstr converts between compact duration strings such as "1h30m" and Go
// durations, and checks duration fields in configuration files.
package main

import (
	"fmt"
	"os"

	"github.com/jparise/durstr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
