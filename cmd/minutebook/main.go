package main

import (
	"os"

	"github.com/mgpai22/minutebook/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCodeFor(err))
	}
}
