// Package main provides the gnameparse CLI application.
// gnameparse parses scientific names into structured records.
package main

import (
	"os"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
