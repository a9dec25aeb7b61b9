package main

import (
	"os"

	"github.com/junfengy/peeler/cmd/peeler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
