package main

import (
	"os"

	"github.com/yildizm/datagov/internal/cli"
)

// Build variables set by ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd := cli.NewRootCommand(version, commit, date)
	err := cmd.Execute()
	cli.FlushLogs()
	if err != nil {
		os.Exit(1)
	}
}
