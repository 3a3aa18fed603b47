package main

import (
	"os"

	"github.com/0xalexb/textsummarizer/cmd/root"
)

func main() {
	if err := root.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
