package main

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usageText = "usage: addmul <num>\n" +
	"number of operations: <num> millions\n"

// runDriver re-executes the test binary as the addmul driver with the given
// argument vector and returns its stdout and exit code.
func runDriver(t *testing.T, args ...string) (string, int) {
	cmd := exec.Command(os.Args[0],
		append([]string{"-test.run=TestDriverProcess", "--"}, args...)...)
	cmd.Env = append(os.Environ(), "ADDMUL_DRIVER_PROCESS=1")

	out, err := cmd.Output()
	if err == nil {
		return string(out), 0
	}
	exitErr, ok := err.(*exec.ExitError)
	require.Truef(t, ok, "driver did not run: %v", err)
	return string(out), exitErr.ExitCode()
}

// TestDriverProcess is the child side of runDriver, not a test of its own:
// it rewrites the argument vector to everything after "--" and hands control
// to main.
func TestDriverProcess(t *testing.T) {
	if os.Getenv("ADDMUL_DRIVER_PROCESS") != "1" {
		return
	}

	args := []string{"addmul"}
	for i, arg := range os.Args {
		if arg == "--" {
			args = append(args, os.Args[i+1:]...)
			break
		}
	}
	os.Args = args

	main()
	os.Exit(0)
}

func TestDriverUsageOnMissingArgument(t *testing.T) {
	out, code := runDriver(t)

	assert.NotZero(t, code)
	assert.Equal(t, usageText, out)
}

func TestDriverUsageOnExtraArguments(t *testing.T) {
	out, code := runDriver(t, "1", "2")

	assert.NotZero(t, code)
	assert.Equal(t, usageText, out)
}

func TestDriverReportLine(t *testing.T) {
	out, code := runDriver(t, "1")

	assert.Zero(t, code)
	// One million requested ops run to completion with a zero residual.
	assert.Regexp(t,
		`^addmul:\t \d+\.\d{3} s, .+ Gflops, N=1000000, res=0\.000000\n$`, out)
}

func TestDriverNonPositiveArgumentStillCompletes(t *testing.T) {
	out, code := runDriver(t, "-5")

	assert.Zero(t, code)
	assert.Regexp(t, `N=1000, res=0\.000000\n$`, out)
}
