package transcript

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const rawLabelPrefix = "spk_"

// DisplayLabel renders a raw diarization label such as "spk_0" as the
// one-based "Speaker 1". Labels that do not follow the pattern pass through.
func DisplayLabel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	suffix, ok := strings.CutPrefix(trimmed, rawLabelPrefix)
	if !ok {
		return trimmed
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 {
		return trimmed
	}
	return fmt.Sprintf("Speaker %d", n+1)
}

// FormatClock renders seconds as HH:MM:SS after rounding to the nearest second.
// Hours do not wrap at 24.
func FormatClock(seconds float64) string {
	total := int64(math.Round(seconds))
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// Span renders a segment's time range as "HH:MM:SS - HH:MM:SS".
func (s Segment) Span() string {
	return FormatClock(s.StartTime) + " - " + FormatClock(s.EndTime)
}
