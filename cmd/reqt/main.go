package main

import (
	"os"

	"github.com/reqt-tools/reqt/internal/cli"
)

func main() {
	code := cli.ExitSuccess
	if err := cli.Execute(); err != nil {
		code = cli.ExitFailure
	}
	os.Exit(code)
}
