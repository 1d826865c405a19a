// Command mandelplane computes greatest common divisors and maps raster
// pixels onto the complex plane for Mandelbrot escape-time tests.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/barlingo/mandelplane/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := cli.NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return cli.ExitSuccess
	}

	// Command errors are already reported by the output formatter;
	// anything else comes from cobra (bad flags, wrong argument count).
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(stderr, "Error:", err)
		return cli.ExitCommandError
	}
	return exitErr.Code
}
