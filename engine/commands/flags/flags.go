// Package flags provides the flags shared by several linkd commands.
//
// Command-specific flags are defined locally in the command file.
package flags

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// Output formats accepted by Format.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// MustString returns the string value, ignoring the error.
// Safe to use with registered flags where GetString cannot fail.
func MustString(s string, _ error) string { return s }

// MustUint32 returns the uint32 value, ignoring the error.
func MustUint32(v uint32, _ error) uint32 { return v }

// MustFloat64 returns the float64 value, ignoring the error.
func MustFloat64(v float64, _ error) float64 { return v }

// MustStringArray returns the slice value, ignoring the error.
func MustStringArray(v []string, _ error) []string { return v }

// Config adds the persistent --config flag naming the SDK configuration file. A missing file
// falls back to environment variables.
func Config(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "linkd.yml", "Path to the linkd configuration file")
}

// Contract adds the required --contract/-c flag for the escrow contract ID.
func Contract(cmd *cobra.Command) {
	cmd.Flags().StringP("contract", "c", "", "Escrow contract ID, C... (required)")
	_ = cmd.MarkFlagRequired("contract")
}

// Format adds the --format/-f flag selecting yaml or json output.
func Format(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", FormatYAML, "Output format: yaml or json")
}

// ValidateFormat checks a --format value.
func ValidateFormat(format string) error {
	if !slices.Contains([]string{FormatYAML, FormatJSON}, format) {
		return fmt.Errorf("unsupported format %q: expected %s or %s", format, FormatYAML, FormatJSON)
	}

	return nil
}
