package main

import (
	"os"

	"campaignfinance/cmd/cfctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
