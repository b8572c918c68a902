package main

import (
	"os"

	"github.com/dsmmcken/distman/internal/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
