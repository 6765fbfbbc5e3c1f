package main

import (
	"os"

	"github.com/sumstars/sumstars/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
