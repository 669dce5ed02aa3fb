// Package main is the entry point for the uft CLI.
package main

import "github.com/mouse-blink/uft/cmd"

func main() {
	cmd.Execute()
}
