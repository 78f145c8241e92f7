package records

import (
	"testing"
	"time"
)

func TestTimeRoundTrip(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 6, time.UTC)
	if got := ParseTime(FormatTime(ts)); !got.Equal(ts) {
		t.Errorf("round trip = %v, want %v", got, ts)
	}
	if FormatTime(time.Time{}) != "" {
		t.Error("zero time must format as empty")
	}
	if !ParseTime("yesterday").IsZero() {
		t.Error("malformed must parse as zero")
	}
	if Unix(time.Time{}) != 0 || Unix(ts) != ts.Unix() {
		t.Error("Unix mismatch")
	}
}
