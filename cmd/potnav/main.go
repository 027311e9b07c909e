// Command potnav synthesizes potential fields, walks them and serves them over HTTP.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "potnav:", err)
		os.Exit(1)
	}
}
