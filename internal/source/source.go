// Package source defines where transcript text comes from.
//
// A Source turns a video reference into raw timestamped transcript text. The
// production implementation shells out to the summarize extractor (see
// internal/services/summarize); File reads a transcript that was saved
// earlier, and Func adapts a plain function for tests.
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"quotefinder/internal/config"
)

// Source fetches transcript text for a video reference.
type Source interface {
	Fetch(ctx context.Context, ref string) (string, error)
}

// Func adapts an ordinary function to the Source interface.
type Func func(ctx context.Context, ref string) (string, error)

// Fetch calls f.
func (f Func) Fetch(ctx context.Context, ref string) (string, error) {
	return f(ctx, ref)
}

// Static returns a Source that always yields text.
func Static(text string) Source {
	return Func(func(context.Context, string) (string, error) {
		return text, nil
	})
}

// File reads transcript text from a local path instead of running an
// extractor. The video reference is ignored; it is only used for links.
// A path of "-" reads from Stdin.
type File struct {
	Path  string
	Stdin io.Reader
}

// Fetch reads the whole file.
func (f File) Fetch(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := strings.TrimSpace(f.Path)
	if path == "" {
		return "", fmt.Errorf("read transcript: path required")
	}
	if path == "-" {
		stdin := f.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read transcript from stdin: %w", err)
		}
		return string(data), nil
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(data), nil
}
