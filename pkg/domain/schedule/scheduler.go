package schedule

import (
	"fmt"

	"github.com/flowlabs/flowmap/pkg/domain/curriculum"
	"github.com/flowlabs/flowmap/pkg/domain/profile"
)

// Scheduler lays out a curriculum on a week grid. Scheduling is fully
// deterministic: identical input always yields identical week numbers.
type Scheduler struct{}

// NewScheduler creates a scheduler.
func NewScheduler() Scheduler {
	return Scheduler{}
}

// Schedule walks the curriculum in phase order, assigning each topic a
// contiguous week span sized by ceil(estimatedHours / hoursPerWeek) with a
// one-week minimum, and emits one milestone entry per phase spanning the
// union of its topics' spans. The week cursor starts at 1 and never moves
// backwards.
func (Scheduler) Schedule(c *curriculum.Curriculum, commitment profile.TimeCommitment) Timeline {
	hoursPerWeek := commitment.HoursPerWeek()
	currentWeek := 1
	timeline := make(Timeline, 0, c.TopicCount()+len(c.Phases))

	for phaseIndex, phase := range c.Phases {
		phaseStart := currentWeek
		phaseWeeks := 0

		for _, topic := range phase.Topics {
			hours := ParseContentDuration(topic.Duration).Hours()
			weeksNeeded := (hours + hoursPerWeek - 1) / hoursPerWeek
			if weeksNeeded < 1 {
				weeksNeeded = 1
			}

			timeline = append(timeline, Entry{
				ID:             topic.ID,
				Title:          topic.Title,
				Phase:          phase.Title,
				StartWeek:      currentWeek,
				EndWeek:        currentWeek + weeksNeeded - 1,
				DurationWeeks:  weeksNeeded,
				EstimatedHours: hours,
				Difficulty:     topic.Difficulty,
				Type:           topic.Type,
			})

			currentWeek += weeksNeeded
			phaseWeeks += weeksNeeded
		}

		timeline = append(timeline, Entry{
			ID:            fmt.Sprintf("phase-%d", phaseIndex),
			Title:         fmt.Sprintf("%s - Phase Complete", phase.Title),
			Phase:         phase.Title,
			StartWeek:     phaseStart,
			EndWeek:       currentWeek - 1,
			DurationWeeks: phaseWeeks,
			Type:          curriculum.TypeMilestone,
			IsMilestone:   true,
		})
	}

	return timeline
}
