// Package link builds playback-position links for video references.
package link

import (
	"fmt"
	"strings"

	"quotefinder/internal/transcript"
)

// Build returns ref with a t=<seconds>s parameter for the transcript
// timestamp ts. Any fragment is dropped first so the parameter is not hidden
// behind it.
func Build(ref, ts string) (string, error) {
	seconds, err := transcript.Seconds(ts)
	if err != nil {
		return "", fmt.Errorf("build link: %w", err)
	}
	return BuildSeconds(ref, seconds), nil
}

// BuildSeconds is Build for a precomputed offset.
func BuildSeconds(ref string, seconds int) string {
	base, _, _ := strings.Cut(ref, "#")
	joiner := "?"
	if strings.Contains(base, "?") {
		joiner = "&"
	}
	return fmt.Sprintf("%s%st=%ds", base, joiner, seconds)
}
