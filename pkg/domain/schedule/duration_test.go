package schedule_test

import (
	"testing"

	"github.com/flowlabs/flowmap/pkg/domain/schedule"
)

func TestParseContentDuration(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantHours int
	}{
		{"one week", "1 week", 7},
		{"two weeks", "2 weeks", 14},
		{"four weeks", "4 weeks", 28},
		{"no space", "3weeks", 21},
		{"uppercase", "2 Weeks", 14},
		{"empty defaults", "", 7},
		{"days not recognized", "10 days", 7},
		{"garbage defaults", "a while", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := schedule.ParseContentDuration(tt.input)
			if d.Hours() != tt.wantHours {
				t.Errorf("Hours() = %d, want %d", d.Hours(), tt.wantHours)
			}
		})
	}
}

func TestContentDuration_String(t *testing.T) {
	d := schedule.ParseContentDuration("2 weeks")
	if d.String() != "2 weeks" {
		t.Errorf("expected original string preserved, got %q", d.String())
	}
}
