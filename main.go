package main

import (
	"os"

	"github.com/Nour-Al-Hazzouri/majorly/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
