package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"fmebackup/internal/backup"
	"fmebackup/internal/tui"

	"github.com/spf13/cobra"
)

func init() {

	// Create-Command Flags
	createCmd.Flags().StringP("config", "c", "", "Path to the optional settings file")
	createCmd.Flags().BoolP("dry-run", "n", false, "Show what would be copied without writing anything")

	rootCmd.AddCommand(createCmd)

}

var createCmd = &cobra.Command{
	Use:   "create [installation-root]",
	Short: "Copy the FME Flow configuration into a new backup folder",
	Long: `Copy the fixed set of FME Flow configuration files and folders from the
installation root into a new timestamped folder under your home directory.
Missing or unreadable items are reported and skipped; they never abort the run.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		settings, err := backup.LoadSettings(settingsPath(cmd))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		root, err := resolveRoot(args, settings.DefaultRoot)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		dryRun, _ := cmd.Flags().GetBool("dry-run")

		_, err = backup.Run(backup.Options{
			Root:   root,
			Dest:   settings.Destination,
			DryRun: dryRun,
		}, tui.NewPrinter(os.Stdout))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

	},
}

// resolveRoot picks the installation root from the argument, an interactive
// prompt, or the default when stdin is not a terminal.
func resolveRoot(args []string, def string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !tui.IsTerminal(os.Stdin) {
		return def, nil
	}
	return backup.PromptRoot(os.Stdin, os.Stdout, def)
}

// settingsPath returns the --config value or the default settings location.
func settingsPath(cmd *cobra.Command) string {
	if path := cmd.Flag("config").Value.String(); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "fmebackup", "config.yaml")
}
