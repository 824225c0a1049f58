package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleTranscript = "[0:10] hello world\n[0:20] the quick brown fox\n"

// setupCLIEnv isolates HOME and the working directory so no real config is
// read, and returns a temp directory for stubs.
func setupCLIEnv(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("QUOTEFINDER_SUMMARIZE_BIN", "")
	t.Chdir(t.TempDir())
	return t.TempDir()
}

// installSummarizeStub writes a shell script standing in for the summarize
// extractor and points QUOTEFINDER_SUMMARIZE_BIN at it.
func installSummarizeStub(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "summarize")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write summarize stub: %v", err)
	}
	t.Setenv("QUOTEFINDER_SUMMARIZE_BIN", path)
	return path
}

// transcriptStub prints text only when invoked with the extraction flags.
func transcriptStub(text string) string {
	return `if [ "$2" != "--extract" ] || [ "$3" != "--timestamps" ]; then
  echo "unexpected args: $*" >&2
  exit 9
fi
printf '%s' '` + strings.ReplaceAll(text, "'", `'\''`) + `'`
}

func runCLI(t *testing.T, args []string, stdin io.Reader) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
