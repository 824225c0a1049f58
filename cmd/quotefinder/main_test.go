package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"success", nil, exitOK, ""},
		{"no match", errNoMatch, exitNoMatch, ""},
		{"wrapped no match", fmt.Errorf("find: %w", errNoMatch), exitNoMatch, ""},
		{"failure", errors.New("summarize failed"), exitFailure, "ERROR: summarize failed\n"},
		{"coded with cause", &exitError{code: 3, err: errors.New("boom")}, 3, "ERROR: boom\n"},
		{"interrupted", fmt.Errorf("summarize: %w", context.Canceled), exitFailure, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if code := exitCode(tt.err, &stderr); code != tt.wantCode {
				t.Fatalf("exitCode = %d, want %d", code, tt.wantCode)
			}
			if stderr.String() != tt.wantErr {
				t.Fatalf("stderr = %q, want %q", stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestExitErrorMessage(t *testing.T) {
	if errNoMatch.Error() != "exit status 2" {
		t.Fatalf("unexpected message %q", errNoMatch.Error())
	}
}
