package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// Seconds converts "M:SS" or "H:MM:SS" into total seconds.
func Seconds(ts string) (int, error) {
	parts := strings.Split(strings.TrimSpace(ts), ":")
	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 || strings.HasPrefix(part, "+") {
			return 0, fmt.Errorf("timestamp %q: invalid field %q", ts, part)
		}
		values[i] = v
	}
	switch len(values) {
	case 2:
		return values[0]*60 + values[1], nil
	case 3:
		return values[0]*3600 + values[1]*60 + values[2], nil
	default:
		return 0, fmt.Errorf("timestamp %q: expected M:SS or H:MM:SS", ts)
	}
}

// Format renders seconds as "M:SS" below one hour and "H:MM:SS" otherwise.
// Negative values are clamped to zero.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
