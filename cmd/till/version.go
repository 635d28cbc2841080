// Version command for the till CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the till release version.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the till version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("till", version)
	},
}
