package main

import (
	"os"

	"github.com/jfeld/guestlist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
