package main

import (
	"os"

	"github.com/registrame/registrame/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
