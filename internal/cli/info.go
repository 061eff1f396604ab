package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rio-labs/riogen/internal/defs"
	"github.com/rio-labs/riogen/internal/manifest"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the Rio project containing the current directory",
	Long: `Find the enclosing Rio project by searching for rio.toml in the given
directory and its parents, then print the project settings.`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().String("dir", "", "Directory to start searching from (default: current directory)")
	infoCmd.Flags().Bool("json", false, "Print the project settings as JSON")
}

// projectInfo is the JSON form of the info command output.
type projectInfo struct {
	Root       string `json:"root"`
	AppType    string `json:"app_type"`
	MainModule string `json:"main_module"`
}

func runInfo(cmd *cobra.Command, _ []string) error {
	root, err := manifest.Find(getStringFlag(cmd, "dir"))
	if err != nil {
		return err
	}
	pc, err := manifest.Load(root)
	if err != nil {
		return err
	}
	deps.Logger.Debug("project found", "root", root)

	out := cmd.OutOrStdout()
	if getBoolFlag(cmd, "json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(projectInfo{
			Root:       root,
			AppType:    pc.App.AppType.String(),
			MainModule: pc.App.MainModule,
		})
	}

	_, _ = fmt.Fprintln(out, renderCard("Rio project", renderKeyValueLines([]kvPair{
		{"Root", root},
		{"Type", pc.App.AppType.String()},
		{"Module", pc.App.MainModule},
		{"Manifest", filepath.Join(root, defs.RioTOML)},
	})))
	return nil
}
