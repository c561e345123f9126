package schedule_test

import (
	"reflect"
	"testing"

	"github.com/flowlabs/flowmap/pkg/domain/curriculum"
	"github.com/flowlabs/flowmap/pkg/domain/schedule"
)

func sampleCurriculum() *curriculum.Curriculum {
	return &curriculum.Curriculum{
		Title: "Sample Path",
		Phases: []curriculum.Phase{
			{
				ID:    "basics",
				Title: "Basics",
				Topics: []curriculum.Topic{
					{ID: "a", Title: "Topic A", Duration: "2 weeks", Type: curriculum.TypeTheory},
					{ID: "b", Title: "Topic B", Duration: "1 week", Type: curriculum.TypePractical},
				},
			},
			{
				ID:    "advanced",
				Title: "Advanced",
				Topics: []curriculum.Topic{
					{ID: "c", Title: "Topic C", Duration: "3 weeks", Type: curriculum.TypeProjects},
				},
			},
		},
	}
}

func TestScheduler_Schedule(t *testing.T) {
	tl := schedule.NewScheduler().Schedule(sampleCurriculum(), "5-10")

	// 3 topics + 2 milestones
	if len(tl) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(tl))
	}

	want := []struct {
		id        string
		start     int
		end       int
		milestone bool
	}{
		{"a", 1, 2, false},
		{"b", 3, 3, false},
		{"phase-0", 1, 3, true},
		{"c", 4, 6, false},
		{"phase-1", 4, 6, true},
	}
	for i, w := range want {
		e := tl[i]
		if e.ID != w.id || e.StartWeek != w.start || e.EndWeek != w.end || e.IsMilestone != w.milestone {
			t.Errorf("entry %d = {%s %d-%d milestone=%v}, want {%s %d-%d milestone=%v}",
				i, e.ID, e.StartWeek, e.EndWeek, e.IsMilestone, w.id, w.start, w.end, w.milestone)
		}
	}

	if tl[2].Title != "Basics - Phase Complete" {
		t.Errorf("unexpected milestone title: %q", tl[2].Title)
	}
	if tl[2].Type != curriculum.TypeMilestone {
		t.Errorf("expected milestone type, got %s", tl[2].Type)
	}
}

func TestScheduler_Schedule_LowBudgetStretchesWeeks(t *testing.T) {
	// 3 hours/week: a 2-week topic (14 hours) needs ceil(14/3) = 5 weeks.
	tl := schedule.NewScheduler().Schedule(sampleCurriculum(), "1-5")

	if tl[0].DurationWeeks != 5 {
		t.Errorf("expected 5 weeks for topic a, got %d", tl[0].DurationWeeks)
	}
	if tl[0].EstimatedHours != 14 {
		t.Errorf("expected 14 estimated hours, got %d", tl[0].EstimatedHours)
	}
}

func TestScheduler_Schedule_MinimumOneWeek(t *testing.T) {
	c := &curriculum.Curriculum{
		Phases: []curriculum.Phase{{
			ID:    "p",
			Title: "P",
			Topics: []curriculum.Topic{
				{ID: "short", Title: "Short", Duration: "1 week"},
			},
		}},
	}

	// 25 hours/week against a 7-hour topic still occupies one full week.
	tl := schedule.NewScheduler().Schedule(c, "20+")
	if tl[0].DurationWeeks != 1 {
		t.Errorf("expected minimum 1 week, got %d", tl[0].DurationWeeks)
	}
}

func TestScheduler_Schedule_Deterministic(t *testing.T) {
	s := schedule.NewScheduler()
	first := s.Schedule(sampleCurriculum(), "10-20")
	second := s.Schedule(sampleCurriculum(), "10-20")
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical timelines for identical input")
	}
}

func TestScheduler_Schedule_WeeksNeverOverlap(t *testing.T) {
	tl := schedule.NewScheduler().Schedule(sampleCurriculum(), "5-10")

	cursor := 0
	for _, e := range tl {
		if e.IsMilestone {
			continue
		}
		if e.StartWeek <= cursor {
			t.Errorf("topic %s starts at week %d, inside the previous span ending %d", e.ID, e.StartWeek, cursor)
		}
		cursor = e.EndWeek
	}
}

func TestScheduler_Schedule_EmptyPhase(t *testing.T) {
	c := &curriculum.Curriculum{
		Phases: []curriculum.Phase{{ID: "empty", Title: "Empty"}},
	}

	tl := schedule.NewScheduler().Schedule(c, "5-10")
	if len(tl) != 1 {
		t.Fatalf("expected a lone milestone, got %d entries", len(tl))
	}
	m := tl[0]
	if !m.IsMilestone || m.StartWeek != 1 || m.EndWeek != 0 || m.DurationWeeks != 0 {
		t.Errorf("unexpected empty-phase milestone: %+v", m)
	}

	// The degenerate span still counts its start week toward the total.
	if tl.Weeks() != 1 {
		t.Errorf("expected 1 week total, got %d", tl.Weeks())
	}
}

func TestTimeline_Summarize(t *testing.T) {
	tests := []struct {
		name       string
		timeline   schedule.Timeline
		wantWeeks  int
		wantMonths int
	}{
		{"empty", schedule.Timeline{}, 0, 0},
		{"four weeks", schedule.Timeline{{EndWeek: 4}}, 4, 1},
		{"five weeks rounds up", schedule.Timeline{{EndWeek: 5}}, 5, 2},
		{"max across entries", schedule.Timeline{{EndWeek: 3}, {EndWeek: 9}, {EndWeek: 6}}, 9, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.timeline.Summarize()
			if s.Weeks != tt.wantWeeks || s.Months != tt.wantMonths {
				t.Errorf("Summarize() = %+v, want weeks=%d months=%d", s, tt.wantWeeks, tt.wantMonths)
			}
		})
	}
}
