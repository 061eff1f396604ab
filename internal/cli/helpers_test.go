package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// executeCommand runs the root command with args in headless mode against
// an empty configuration file location and returns the combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("RIOGEN_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv("RIOGEN_APP_TYPE", "")
	t.Setenv("RIOGEN_TEMPLATE", "")
	t.Setenv("RIOGEN_LOG_LEVEL", "")

	InitDependencies()
	deps.Headless.ForceHeadless(true)
	t.Cleanup(func() { SetDeps(nil) })

	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default,
// since cobra keeps flag values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
