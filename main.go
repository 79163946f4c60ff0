// Package main is the entry point for the dedupe CLI.
package main

import "github.com/mrdannyclark82/MillaCore-Fusion/cmd"

func main() {
	cmd.Execute()
}
