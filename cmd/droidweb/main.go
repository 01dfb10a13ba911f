// Command droidweb scaffolds and drives Android WebView apps.
package main

import (
	"os"

	"github.com/go-drift/droidweb/cmd/droidweb/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
