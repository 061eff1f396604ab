package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rio-labs/riogen/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "riogen",
	Short: "Create Rio apps and websites from templates",
	Long: `riogen scaffolds new Rio projects: a Python package with components,
pages, assets and a rio.toml, instantiated from a project template.

Run "riogen create" to start a new project and "riogen templates" to see
which templates are available.`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: configureDependencies,
}

// @MX:ANCHOR: [AUTO] Execute is the main entry point for the riogen CLI
// @MX:REASON: called from cmd/riogen/main.go and the command tests
// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), renderError(err))
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("riogen %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().String("config", "", "Path to the riogen config file (default: $RIOGEN_CONFIG or the user config dir)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Write debug logs to stderr")

	rootCmd.AddCommand(versionCmd)
}

// configureDependencies loads configuration before any subcommand runs.
func configureDependencies(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		InitDependencies()
	}
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	return deps.Configure(configPath, verbose, cmd.ErrOrStderr())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the riogen version",
	Args:  cobra.NoArgs,
	// Needs no configuration.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "riogen "+version.GetFullVersion())
	},
}
