package pipeline

import (
	"math"
	"testing"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		ms   float64
		want string
	}{
		{0, "0:00:00.00"},
		{1234, "0:00:01.23"},
		{3_723_000, "1:02:03.00"},
		{59_999, "0:00:59.99"},
		{60_000, "0:01:00.00"},
		{9, "0:00:00.00"},
		{36_000_000, "10:00:00.00"},
		{10_000_000_000, "2777:46:40.00"},
		{-500, "0:00:00.00"},
		{math.NaN(), "0:00:00.00"},
		{math.Inf(1), "0:00:00.00"},
		{math.Inf(-1), "0:00:00.00"},
		{1e300, "2562047788015:12:54.78"},
	}

	for _, tt := range tests {
		got := FormatTimestamp(tt.ms)
		if got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0:00:00.00", 0},
		{"0:00:01.23", 1230},
		{"1:02:03.00", 3_723_000},
		{"12:59:59.99", 46_799_990},
	}

	for _, tt := range tests {
		got, err := ParseTimestamp(tt.in)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, in := range []string{"", "1:02", "0:00:01", "0:60:00.00", "0:00:00.100", "a:00:00.00", "-1:00:00.00"} {
		if _, err := ParseTimestamp(in); err == nil {
			t.Errorf("ParseTimestamp(%q) expected error", in)
		}
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	for _, ms := range []float64{0, 5, 10, 999, 1234.5, 61_010, 3_599_999, 3_723_456, 86_400_000} {
		back, err := ParseTimestamp(FormatTimestamp(ms))
		if err != nil {
			t.Fatalf("round trip %v: %v", ms, err)
		}
		if diff := ms - back; diff < 0 || diff >= 10 {
			t.Errorf("round trip %v -> %v, off by %v", ms, back, math.Abs(diff))
		}
	}
}
