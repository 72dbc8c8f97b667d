package cmd

import (
	"fmt"
	"os"

	"fmebackup/internal/backup"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List previously created backup folders",
	Run: func(cmd *cobra.Command, args []string) {

		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println("Can't resolve home directory:", err)
			os.Exit(1)
		}

		entries, err := backup.List(home)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if len(entries) == 0 {
			fmt.Println("No backups found.")
			return
		}

		for _, e := range entries {
			fmt.Printf("%s  %d item(s)  %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Items, e.Path)
		}

	},
}
