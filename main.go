package main

import (
	"os"

	"github.com/theted/aws-concept-map/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
