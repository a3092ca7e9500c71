package pipeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxTimestampMs is the largest float64 below 2^63 that floors into an int64.
const maxTimestampMs = float64(1<<63 - 1024)

// FormatTimestamp converts milliseconds to the ASS time format H:MM:SS.CC.
// Negative and non-finite input is treated as zero; values beyond the int64
// range saturate.
func FormatTimestamp(ms float64) string {
	switch {
	case ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0):
		ms = 0
	case ms >= maxTimestampMs:
		ms = maxTimestampMs
	}
	total := int64(math.Floor(ms))
	cs := (total / 10) % 100
	secs := (total / 1000) % 60
	minutes := (total / 60000) % 60
	hours := total / 3600000
	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, cs)
}

// ParseTimestamp converts an H:MM:SS.CC timestamp back to milliseconds.
func ParseTimestamp(s string) (float64, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("parse timestamp %q: expected H:MM:SS.CC", s)
	}
	secParts := strings.Split(parts[2], ".")
	if len(secParts) != 2 {
		return 0, fmt.Errorf("parse timestamp %q: missing centiseconds", s)
	}

	fields := []string{parts[0], parts[1], secParts[0], secParts[1]}
	values := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("parse timestamp %q: invalid field %q", s, f)
		}
		values[i] = v
	}
	hours, minutes, secs, cs := values[0], values[1], values[2], values[3]
	if minutes > 59 || secs > 59 || cs > 99 {
		return 0, fmt.Errorf("parse timestamp %q: field out of range", s)
	}
	return float64(hours*3600000 + minutes*60000 + secs*1000 + cs*10), nil
}
