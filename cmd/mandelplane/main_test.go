package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barlingo/mandelplane/internal/cli"
)

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		exitCode int
		stdout   string
		stderr   string
	}{
		{
			name:     "success",
			args:     []string{"gcd", "14", "15"},
			exitCode: cli.ExitSuccess,
			stdout:   "The greatest common divisor of [14 15] is 1\n",
		},
		{
			name:     "invalid format",
			args:     []string{"--format", "xml", "regions"},
			exitCode: cli.ExitCommandError,
			stderr:   `Error: invalid format "xml"`,
		},
		{
			name:     "unknown flag",
			args:     []string{"gcd", "--nope", "4"},
			exitCode: cli.ExitCommandError,
			stderr:   "Error: unknown flag: --nope",
		},
		{
			name:     "computation failure",
			args:     []string{"gcd", "0", "4"},
			exitCode: cli.ExitFailure,
			stdout:   "Error [E003]",
		},
		{
			name:     "unknown region",
			args:     []string{"point", "--pixel", "0,0", "--region", "atlantis"},
			exitCode: cli.ExitCommandError,
			stdout:   "Error [E006]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			code := run(tt.args, stdout, stderr)

			assert.Equal(t, tt.exitCode, code)
			assert.Contains(t, stdout.String(), tt.stdout)
			assert.Contains(t, stderr.String(), tt.stderr)
		})
	}
}
