// Command azrest is a command line for Azure management and data-plane APIs.
package main

import (
	"fmt"
	"os"

	"github.com/yaroslav/azrest/cmd/azrest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
