package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFuncAndStatic(t *testing.T) {
	ctx := context.Background()
	want := errors.New("boom")
	f := Func(func(_ context.Context, ref string) (string, error) {
		if ref != "ref" {
			t.Fatalf("unexpected ref %q", ref)
		}
		return "", want
	})
	if _, err := f.Fetch(ctx, "ref"); !errors.Is(err, want) {
		t.Fatalf("expected wrapped error, got %v", err)
	}

	text, err := Static("[0:01] hi").Fetch(ctx, "anything")
	if err != nil || text != "[0:01] hi" {
		t.Fatalf("Static Fetch = %q, %v", text, err)
	}
}

func TestFileReadsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.txt")
	if err := os.WriteFile(path, []byte("[0:10] hello world\n"), 0o644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}
	text, err := File{Path: path}.Fetch(context.Background(), "https://x.test/watch?v=abc")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if text != "[0:10] hello world\n" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestFileReadsStdin(t *testing.T) {
	text, err := File{Path: "-", Stdin: strings.NewReader("[0:20] from stdin")}.Fetch(context.Background(), "")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if text != "[0:20] from stdin" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestFileErrors(t *testing.T) {
	ctx := context.Background()
	if _, err := (File{}).Fetch(ctx, ""); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := (File{Path: filepath.Join(t.TempDir(), "missing.txt")}).Fetch(ctx, ""); err == nil {
		t.Fatal("expected error for missing file")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := (File{Path: "-", Stdin: strings.NewReader("x")}).Fetch(cancelled, ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
