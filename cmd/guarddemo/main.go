package main

import (
	"os"

	"github.com/xgx-io/xgx-guard/cmd/guarddemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
