package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// exitError carries a process exit status through cobra. A nil err means the
// command already reported everything it needed to.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

const (
	exitOK      = 0
	exitFailure = 1
	exitNoMatch = 2
)

var errNoMatch = &exitError{code: exitNoMatch}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	cmd := newRootCommand()
	err := cmd.ExecuteContext(ctx)
	cancel()
	os.Exit(exitCode(err, os.Stderr))
}

// exitCode reports err on stderr and maps it to a process status.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	var coded *exitError
	if errors.As(err, &coded) {
		if coded.err != nil {
			fmt.Fprintf(stderr, "ERROR: %v\n", coded.err)
		}
		return coded.code
	}
	if !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
	}
	return exitFailure
}
