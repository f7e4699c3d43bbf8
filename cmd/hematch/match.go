package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/hematch/engine"
	"github.com/coregx/hematch/fhe/lattigo"
	"github.com/coregx/hematch/fhe/plaintext"
)

// newMatchCmd wires system §6.2's full pipeline (encrypt content under a
// freshly generated key pair, match, decrypt) into a single subcommand.
// The engine.HasMatch call is the only part of this flow a real deployment
// would run server-side; key generation and decryption stand in for a
// client that is never actually co-located with the server in production.
func newMatchCmd() *cobra.Command {
	var (
		pattern string
		content string
		backend string
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Report whether a pattern matches encrypted content",
		RunE: func(cmd *cobra.Command, args []string) error {
			back, err := newBackend(backend)
			if err != nil {
				return err
			}

			plan, err := engine.Check(pattern, len(content), engine.DefaultConfig())
			if err != nil {
				return fmt.Errorf("pattern %q: %w", pattern, err)
			}

			ciphertext, err := engine.EncryptASCII(back, content)
			if err != nil {
				return fmt.Errorf("encrypting content: %w", err)
			}

			result, err := engine.HasMatchWithConfig(back.ServerKey(), ciphertext, pattern, engine.DefaultConfig())
			if err != nil {
				return fmt.Errorf("matching: %w", err)
			}

			bit := engine.Decrypt(back, result)

			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "paths evaluated: %d\n", plan.Len())
				if bit != 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "match")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "no match")
				}
			}
			if bit == 0 {
				return errNoMatch
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "regex pattern to match (required)")
	cmd.Flags().StringVarP(&content, "content", "c", "", "ASCII content to match against (required)")
	cmd.Flags().StringVar(&backend, "backend", "plaintext", "FHE backend: plaintext or lattigo")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress output; use exit code only")
	_ = cmd.MarkFlagRequired("pattern")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

// errNoMatch carries a non-zero exit status without printing a redundant
// error line (match's own output already reported "no match").
type errNoMatchType struct{}

func (errNoMatchType) Error() string { return "no match" }

var errNoMatch = errNoMatchType{}

func newBackend(name string) (engine.Backend, error) {
	switch name {
	case "", "plaintext":
		return plaintext.Backend{}, nil
	case "lattigo":
		return lattigo.NewBackend()
	default:
		return nil, fmt.Errorf("unknown backend %q (want plaintext or lattigo)", name)
	}
}
