package main

import "github.com/zkvm-tools/elfembed/cmd"

// main is the entry point of the elfembed CLI application.
// It executes the root command which handles argument parsing and the embed run.
func main() {
	cmd.Execute()
}
