// cmd/autodetect/main.go
package main

import (
	"github.com/mwiater/autodetect/internal/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	setVersionInfo = commands.SetVersionInfo
	executeCmd     = commands.Execute
)

// main starts the autodetect CLI by delegating to the cobra root command
// defined in the commands package. Build metadata is injected via -ldflags.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
