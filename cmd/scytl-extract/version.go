package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of scytl-extract",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scytl-extract %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
