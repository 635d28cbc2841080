// Package main provides the till CLI, the presentation consumer of the
// till data layer. Every command goes through the store's public
// operations; nothing here touches the collection files directly.
package main

import (
	"fmt"
	"os"
)

func main() {
	err := rootCmd.Execute()
	if err == nil {
		os.Exit(exitSuccess)
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	if isUserError(err) {
		os.Exit(exitUserError)
	}
	os.Exit(exitSysError)
}
