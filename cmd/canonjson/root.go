package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"canonjson/internal/canonical"
	"canonjson/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "canonjson",
	Short: "canonjson - deterministic JSON encoder",
	Long: `canonjson reads a JSON document from standard input and writes its
canonical encoding to standard output: object keys sorted by Unicode code
point, no insignificant whitespace, minimal string escapes, and
deterministic number formatting. Semantically equal documents always
produce byte-identical output, so the result is suitable for hashing
and signing.

Examples:
  echo '{"b": 1, "a": 2}' | canonjson
  canonjson < manifest.json | sha256sum`,
	Version:       version.Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCanonicalize,
}

func init() {
	rootCmd.SetVersionTemplate("canonjson version {{.Version}}\n")
}

// runCanonicalize is the one-shot stdin to stdout pipeline. Canonical bytes
// reach stdout only after the whole document has rendered; a failing
// invocation writes nothing.
func runCanonicalize(cmd *cobra.Command, args []string) error {
	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading standard input: %w", err)
	}

	out, err := canonical.Canonicalize(input)
	if err != nil {
		return err
	}

	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return fmt.Errorf("writing canonical output: %w", err)
	}
	return nil
}
