package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/yaroslav/azrest/pkg/token"
)

// ExecuteNewToken prints a random bearer token suitable for -token.
func ExecuteNewToken(args []string) error {
	fs := flag.NewFlagSet("new-token", flag.ContinueOnError)
	numBytes := fs.Int("bytes", 32, "Number of random bytes in the token")
	export := fs.Bool("export", false, "Print as a shell export statement")

	if err := fs.Parse(args); err != nil {
		return err
	}
	return printToken(os.Stdout, *numBytes, *export)
}

func printToken(w io.Writer, numBytes int, export bool) error {
	tok, err := token.GenerateWithLength(numBytes)
	if err != nil {
		return err
	}
	if export {
		fmt.Fprintf(w, "export AZREST_EMULATOR_TOKEN=%s\n", tok)
		return nil
	}
	fmt.Fprintln(w, tok)
	return nil
}
