package main

import (
	"os"

	"github.com/numberninja/numberninja/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
