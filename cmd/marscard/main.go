package main

import (
	"os"

	"github.com/rackaracka123/terraforming-mars-sub000/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
