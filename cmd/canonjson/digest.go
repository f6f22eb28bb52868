package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"canonjson/internal/digest"
)

var digestAlgo string

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Hash the canonical form of a JSON document",
	Long: `Read a JSON document from standard input, canonicalize it, and print
the lowercase hex digest of the canonical bytes.

Because canonicalization is deterministic, the digest identifies the
document's content independently of key order and formatting.

Examples:
  echo '{"b": 1, "a": 2}' | canonjson digest
  echo '{"b": 1, "a": 2}' | canonjson digest --algo blake2b`,
	Args: cobra.NoArgs,
	RunE: runDigest,
}

func init() {
	digestCmd.Flags().StringVar(&digestAlgo, "algo", string(digest.SHA256),
		"Digest algorithm: sha256, sha512, or blake2b")
	rootCmd.AddCommand(digestCmd)
}

func runDigest(cmd *cobra.Command, args []string) error {
	algo, err := digest.ParseAlgorithm(digestAlgo)
	if err != nil {
		return err
	}

	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading standard input: %w", err)
	}

	sum, err := digest.Sum(input, algo)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), sum)
	return err
}
