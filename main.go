package main

import (
	"os"

	"github.com/chemcat/chemcat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
