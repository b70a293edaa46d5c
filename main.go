package main

import (
	"os"

	"github.com/ben-spoonradio/examdrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
