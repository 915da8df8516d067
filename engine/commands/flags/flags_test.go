package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContract(t *testing.T) {
	t.Parallel()

	t.Run("flag properties", func(t *testing.T) {
		t.Parallel()

		cmd := &cobra.Command{Use: "test"}
		Contract(cmd)

		f := cmd.Flags().Lookup("contract")
		require.NotNil(t, f)
		assert.Equal(t, "c", f.Shorthand)
		assert.Empty(t, f.DefValue)
	})

	t.Run("is required", func(t *testing.T) {
		t.Parallel()

		cmd := &cobra.Command{Use: "test"}
		Contract(cmd)

		err := cmd.ValidateRequiredFlags()
		require.ErrorContains(t, err, "contract")
	})

	t.Run("value retrieval", func(t *testing.T) {
		t.Parallel()

		cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
		Contract(cmd)

		cmd.SetArgs([]string{"-c", "CABC"})
		require.NoError(t, cmd.Execute())
		assert.Equal(t, "CABC", MustString(cmd.Flags().GetString("contract")))
	})
}

func TestConfig(t *testing.T) {
	t.Parallel()

	parent := &cobra.Command{Use: "parent"}
	Config(parent)

	var got string
	child := &cobra.Command{Use: "child", Run: func(cmd *cobra.Command, _ []string) {
		got = MustString(cmd.Flags().GetString("config"))
	}}
	parent.AddCommand(child)

	parent.SetArgs([]string{"child", "--config", "custom.yml"})
	require.NoError(t, parent.Execute())
	assert.Equal(t, "custom.yml", got)

	f := parent.PersistentFlags().Lookup("config")
	require.NotNil(t, f)
	assert.Equal(t, "linkd.yml", f.DefValue)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test"}
	Format(cmd)

	f := cmd.Flags().Lookup("format")
	require.NotNil(t, f)
	assert.Equal(t, "f", f.Shorthand)
	assert.Equal(t, FormatYAML, f.DefValue)

	require.NoError(t, ValidateFormat(FormatYAML))
	require.NoError(t, ValidateFormat(FormatJSON))
	require.EqualError(t, ValidateFormat("toml"), `unsupported format "toml": expected yaml or json`)
}
