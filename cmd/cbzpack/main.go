// Package main provides the entry point for the cbzpack CBZ converter CLI.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
