package transcript

import "testing"

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"spk_0", "Speaker 1"},
		{"spk_9", "Speaker 10"},
		{"spk_12", "Speaker 13"},
		{"S1", "S1"},
		{"spk_x", "spk_x"},
		{" spk_1 ", "Speaker 2"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DisplayLabel(tt.input); got != tt.want {
				t.Errorf("DisplayLabel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00"},
		{2, "00:00:02"},
		{2.4, "00:00:02"},
		{2.6, "00:00:03"},
		{59.5, "00:01:00"},
		{3725, "01:02:05"},
		{86399.6, "24:00:00"},
		{90061, "25:01:01"},
		{-1, "00:00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestSegmentSpan(t *testing.T) {
	seg := Segment{StartTime: 61.2, EndTime: 75.9}
	if got := seg.Span(); got != "00:01:01 - 00:01:16" {
		t.Fatalf("Span() = %q", got)
	}
}
