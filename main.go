package main

import (
	"os"

	"github.com/ykarpov/negobot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
