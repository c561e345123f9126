// Package schedule converts an adapted curriculum and a weekly hour budget
// into a linear, week-numbered timeline with phase milestones.
package schedule

import "github.com/flowlabs/flowmap/pkg/domain/curriculum"

// Entry is a scheduled occurrence of a topic, or a synthetic phase-completion
// milestone, anchored to 1-based week numbers.
type Entry struct {
	ID             string                `json:"id" yaml:"id"`
	Title          string                `json:"title" yaml:"title"`
	Phase          string                `json:"phase" yaml:"phase"`
	StartWeek      int                   `json:"start_week" yaml:"start_week"`
	EndWeek        int                   `json:"end_week" yaml:"end_week"`
	DurationWeeks  int                   `json:"duration_weeks" yaml:"duration_weeks"`
	EstimatedHours int                   `json:"estimated_hours,omitempty" yaml:"estimated_hours,omitempty"`
	Difficulty     curriculum.Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Type           curriculum.TopicType  `json:"type" yaml:"type"`
	IsMilestone    bool                  `json:"is_milestone,omitempty" yaml:"is_milestone,omitempty"`
}

// Timeline is the ordered schedule: topic entries in phase order, each phase
// followed by its milestone entry.
type Timeline []Entry

// Weeks returns the total schedule length: the maximum end week across all
// entries. An empty timeline spans zero weeks.
func (t Timeline) Weeks() int {
	max := 0
	for _, e := range t {
		w := e.EndWeek
		if e.StartWeek > w {
			w = e.StartWeek
		}
		if w > max {
			max = w
		}
	}
	return max
}

// Summary is the roadmap-level duration estimate derived from a timeline.
type Summary struct {
	Weeks  int `json:"weeks" yaml:"weeks"`
	Months int `json:"months" yaml:"months"`
}

// Summarize computes the duration summary. Months are counted in 4-week
// blocks, rounded up.
func (t Timeline) Summarize() Summary {
	weeks := t.Weeks()
	months := (weeks + 3) / 4
	return Summary{Weeks: weeks, Months: months}
}
