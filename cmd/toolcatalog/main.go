// Command toolcatalog serves the tool catalog over HTTP and MCP and provides
// offline commands to validate, dump and describe catalog files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "toolcatalog:", err)
		os.Exit(1)
	}
}
