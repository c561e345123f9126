package profile_test

import (
	"testing"

	"github.com/flowlabs/flowmap/pkg/domain/profile"
)

func TestTimeCommitment_HoursPerWeek(t *testing.T) {
	tests := []struct {
		name  string
		input profile.TimeCommitment
		want  int
	}{
		{"minimal", "1-5", 3},
		{"moderate", "5-10", 7},
		{"serious", "10-20", 15},
		{"intense", "20+", 25},
		{"empty defaults", "", 7},
		{"unrecognized defaults", "40+", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.HoursPerWeek(); got != tt.want {
				t.Errorf("HoursPerWeek() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSkillLevel_Rank(t *testing.T) {
	if profile.LevelBeginner.Rank() >= profile.LevelIntermediate.Rank() {
		t.Error("expected beginner < intermediate")
	}
	if profile.LevelIntermediate.Rank() >= profile.LevelAdvanced.Rank() {
		t.Error("expected intermediate < advanced")
	}
	if profile.SkillLevel("expert").Rank() != 0 {
		t.Error("expected unknown level to rank 0")
	}
}

func TestSkillLevel_IsValid(t *testing.T) {
	for _, l := range profile.AllSkillLevels() {
		if !l.IsValid() {
			t.Errorf("expected %s to be valid", l)
		}
	}
	if profile.SkillLevel("guru").IsValid() {
		t.Error("expected 'guru' to be invalid")
	}
}
