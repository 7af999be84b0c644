package main

import (
	"os"

	"github.com/wassupdoc/alfred-natural-calendar/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
