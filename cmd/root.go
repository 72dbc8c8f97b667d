package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("%s, %s/%s", "0.1.0", runtime.GOOS, runtime.GOARCH),
	Use:     "fmebackup",
	Short:   "Back up your FME Flow configuration with one command.",
	Long: `A small CLI that copies the FME Flow configuration files and folders
into a timestamped backup directory under your home directory.`,
}

// Execute adds all child commands to the root command and sets flags.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

}
