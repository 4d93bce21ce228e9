package main

import (
	"os"

	"handoff-address/cmd/addrcheck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
