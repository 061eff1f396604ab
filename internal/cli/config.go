package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rio-labs/riogen/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and initialize the riogen configuration",
	Long: `The riogen configuration file holds the default project type, template,
theme colours, extra template directories and log settings.

Its location is $RIOGEN_CONFIG, or riogen/config.yaml in the user
configuration directory.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), deps.Config.Path())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := yaml.Marshal(deps.Config.Get())
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		out := cmd.OutOrStdout()
		if !deps.Config.FromFile() {
			_, _ = fmt.Fprintln(out, cliMuted.Render("# no config file, showing defaults"))
		}
		_, err = out.Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configInitCmd)

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := deps.Config.Path()
	out := cmd.OutOrStdout()

	if _, err := os.Stat(path); err == nil && !getBoolFlag(cmd, "force") {
		_, _ = fmt.Fprintf(out, "%s %s already exists, use --force to overwrite\n", symWarning(), path)
		return nil
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := config.Save(path, deps.Config.Get()); err != nil {
		return err
	}
	deps.Logger.Info("configuration written", "path", path)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Configuration written", cliMuted.Render(path)))
	return nil
}
