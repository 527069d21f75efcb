/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"os"

	"github.com/cristianoliveira/dragselect/cmd"
	"github.com/cristianoliveira/dragselect/internal/logging"
)

func main() {
	os.Exit(run(cmd.Execute))
}

// run executes the command tree and maps its result to an exit code.
func run(execute func() error) int {
	if err := execute(); err != nil {
		logging.Error("command failed", "error", err)
		_ = logging.ShutdownGlobal()
		return 1
	}
	return 0
}
