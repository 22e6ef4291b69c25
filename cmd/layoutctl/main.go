// Package main provides layoutctl, a command line front end for the layout
// engine.
//
// Usage:
//
//	layoutctl compute [flags] FILE...   Lay out scene files and print the boxes
//	layoutctl tracks LIST               Parse a grid track list and echo it
//	layoutctl version                   Print version information
//
// Examples:
//
//	layoutctl compute dashboard.yaml
//	layoutctl compute -o json scenes/*.toml
//	layoutctl tracks "100px repeat(2, minmax(40px, 1fr)) auto"
//
// Exit status is 0 on success, 1 for invalid input and 2 when output or
// logging fails.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitCode(err)
	}
	return 0
}

// systemError marks failures of the environment rather than the input.
type systemError struct{ err error }

func (e systemError) Error() string { return e.err.Error() }
func (e systemError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var se systemError
	if errors.As(err, &se) {
		return 2
	}
	return 1
}
