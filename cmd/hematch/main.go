// Command hematch evaluates a regex pattern against ciphertext content
// using only a public server key, per system §1. It is a demonstration
// harness: since the matching engine itself never holds a client key, a
// single invocation generates a fresh key pair, encrypts its --content
// argument under it, runs the match, and decrypts the result — the engine
// call in the middle is the only step a real server-side deployment would
// ever actually perform.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}
	if err == errNoMatch {
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "hematch:", err)
	os.Exit(2)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hematch",
		Short:         "Evaluate regex patterns against homomorphically encrypted content",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMatchCmd())
	root.AddCommand(newCheckCmd())
	return root
}
