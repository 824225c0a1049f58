package summarize

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"quotefinder/internal/logging"
	"quotefinder/internal/services"
)

func writeStub(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}

func TestFetchPassesFixedFlags(t *testing.T) {
	svc := NewService(Config{ExtraArgs: []string{"--lang", "en"}}, logging.NewNop())
	var gotName string
	var gotArgs []string
	svc.WithCommandRunner(func(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
		gotName = name
		gotArgs = args
		return []byte("[0:10] hello\n"), nil, nil
	})

	text, err := svc.Fetch(context.Background(), " https://x.test/watch?v=abc ")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if text != "[0:10] hello\n" {
		t.Fatalf("unexpected text %q", text)
	}
	if gotName != DefaultCommand {
		t.Fatalf("expected default binary, got %q", gotName)
	}
	want := "https://x.test/watch?v=abc --extract --timestamps --lang en"
	if strings.Join(gotArgs, " ") != want {
		t.Fatalf("unexpected args %q, want %q", strings.Join(gotArgs, " "), want)
	}
}

func TestFetchRequiresReference(t *testing.T) {
	svc := NewService(Config{}, nil)
	_, err := svc.Fetch(context.Background(), "  ")
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestFetchReportsMissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	svc := NewService(Config{Binary: "summarize"}, nil)
	_, err := svc.Fetch(context.Background(), "https://x.test/watch?v=abc")
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if !strings.Contains(err.Error(), `"summarize"`) {
		t.Fatalf("expected binary name in error, got %q", err.Error())
	}
}

func TestFetchRunsRealBinary(t *testing.T) {
	dir := t.TempDir()
	stub := writeStub(t, dir, "summarize", `#!/bin/sh
if [ "$2" != "--extract" ] || [ "$3" != "--timestamps" ]; then
  echo "bad flags: $*" >&2
  exit 64
fi
echo "warming up" >&2
printf '[0:10] hello world\n[0:20] the quick brown fox\n'
`)
	svc := NewService(Config{Binary: stub}, logging.NewNop())

	text, err := svc.Fetch(context.Background(), "https://x.test/watch?v=abc")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if text != "[0:10] hello world\n[0:20] the quick brown fox\n" {
		t.Fatalf("unexpected transcript %q", text)
	}
}

func TestFetchNonZeroExitCarriesStderr(t *testing.T) {
	dir := t.TempDir()
	stub := writeStub(t, dir, "summarize", "#!/bin/sh\necho 'partial output'\necho '  Video unavailable  ' >&2\nexit 3\n")
	svc := NewService(Config{Binary: stub}, nil)

	_, err := svc.Fetch(context.Background(), "https://x.test/watch?v=gone")
	var toolErr *services.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected ToolError, got %T %v", err, err)
	}
	if toolErr.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d", toolErr.ExitCode)
	}
	if err.Error() != "Video unavailable" {
		t.Fatalf("expected trimmed stderr as message, got %q", err.Error())
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool marker, got %v", err)
	}
}

func TestFetchNonZeroExitWithoutStderr(t *testing.T) {
	dir := t.TempDir()
	stub := writeStub(t, dir, "summarize", "#!/bin/sh\nexit 1\n")
	svc := NewService(Config{Binary: stub}, nil)

	_, err := svc.Fetch(context.Background(), "https://x.test/watch?v=abc")
	if err == nil || err.Error() != "summarize failed" {
		t.Fatalf("expected generic failure message, got %v", err)
	}
}

func TestFetchRunnerStartFailure(t *testing.T) {
	svc := NewService(Config{}, nil)
	svc.WithCommandRunner(func(context.Context, string, ...string) ([]byte, []byte, error) {
		return nil, nil, exec.ErrNotFound
	})
	_, err := svc.Fetch(context.Background(), "https://x.test/watch?v=abc")
	if !errors.Is(err, services.ErrExternalTool) || !errors.Is(err, exec.ErrNotFound) {
		t.Fatalf("expected wrapped start failure, got %v", err)
	}
}

func TestRequirementUsesConfiguredBinary(t *testing.T) {
	svc := NewService(Config{Binary: "/opt/summarize"}, nil)
	if svc.Requirement().Command != "/opt/summarize" {
		t.Fatalf("unexpected requirement %#v", svc.Requirement())
	}
	if got := NewService(Config{Binary: "  "}, nil).Requirement().Command; got != DefaultCommand {
		t.Fatalf("expected default command, got %q", got)
	}
}
