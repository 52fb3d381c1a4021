package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/format-performer-tags/internal/config"
	"github.com/handiism/format-performer-tags/internal/tui"
)

func main() {
	configFlag := flag.String("config", config.DefaultPath(), "Path to settings file (.json, .yaml)")
	flag.Parse()

	if err := tui.Run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
