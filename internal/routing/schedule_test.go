package routing

import (
	"math"
	"testing"
)

func TestArrivalTimeWrapsPastMidnight(t *testing.T) {
	tests := []struct {
		departure string
		hours     float64
		want      string
	}{
		{"22:00", 3.5, "01:30"},
		{"22:00", 2, "00:00"},
		{"20:00", 11.25, "07:15"},
		{"06:00", 0, "06:00"},
		{"07:30", 1.999, "09:29"},
		{"15:30", 24, "15:30"},
		{"18:00", 30.5, "00:30"},
	}

	for _, tc := range tests {
		t.Run(tc.departure, func(t *testing.T) {
			if got := arrivalTime(tc.departure, tc.hours); got != tc.want {
				t.Errorf("arrivalTime(%q, %.3f) = %q, expected %q", tc.departure, tc.hours, got, tc.want)
			}
		})
	}
}

func TestDepartureTimes(t *testing.T) {
	got := departureTimes(4)
	want := []string{"06:00", "07:30", "09:00", "14:00"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("departureTimes(4)[%d] = %s, expected %s", i, got[i], want[i])
		}
	}

	// Más salidas que la grilla: se repiten de forma cíclica
	wrapped := departureTimes(10)
	if len(wrapped) != 10 {
		t.Fatalf("Expected 10 departures, got %d", len(wrapped))
	}
	if wrapped[0] != "06:00" || wrapped[1] != "06:00" || wrapped[2] != "07:30" || wrapped[3] != "07:30" {
		t.Errorf("Expected wrapped departures sorted with reuse, got %v", wrapped)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0h 0m"},
		{2.5, "2h 30m"},
		{11.2572, "11h 15m"},
		{4.4177, "4h 25m"},
		{4.9999, "5h 0m"},
	}
	for _, tc := range tests {
		if got := formatDuration(tc.hours); got != tc.want {
			t.Errorf("formatDuration(%.4f) = %q, expected %q", tc.hours, got, tc.want)
		}
	}
}

func TestParseDurationLabel(t *testing.T) {
	h, err := ParseDurationLabel("11h 15m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(h-11.25) > 1e-9 {
		t.Errorf("Expected 11.25, got %f", h)
	}

	// Consistente con la etiqueta generada
	hours := 675.43 / 60
	parsed, err := ParseDurationLabel(formatDuration(hours))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(parsed-hours) > 1.0/60 {
		t.Errorf("Expected %f within a minute of %f", parsed, hours)
	}

	if _, err := ParseDurationLabel("about five hours"); err == nil {
		t.Error("Expected error for malformed label")
	}
}

func TestDurationSortKeyIgnoresMinutes(t *testing.T) {
	if durationSortKey("5h 10m") != durationSortKey("5h 50m") {
		t.Error("Expected 5h 10m and 5h 50m to share sort key")
	}
	if durationSortKey("14h 31m") != 14 {
		t.Errorf("Expected 14, got %d", durationSortKey("14h 31m"))
	}
	if durationSortKey("garbage") != math.MaxInt {
		t.Error("Expected unparseable labels to sort last")
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "TZS 0"},
		{8000, "TZS 8,000"},
		{34000, "TZS 34,000"},
		{1234000, "TZS 1,234,000"},
	}
	for _, tc := range tests {
		if got := formatPrice(tc.amount); got != tc.want {
			t.Errorf("formatPrice(%d) = %q, expected %q", tc.amount, got, tc.want)
		}
	}
}
