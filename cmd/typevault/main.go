package main

import (
	"os"

	"github.com/authcorp/typevault/cmd/typevault/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
