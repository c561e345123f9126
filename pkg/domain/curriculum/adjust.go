package curriculum

import "github.com/flowlabs/flowmap/pkg/domain/profile"

// AdjustDifficulty maps a topic's base difficulty to its effective difficulty
// for a learner. Learners at intermediate or above see beginner topics as
// intermediate; advanced learners see intermediate topics as advanced.
// Difficulty is never demoted.
func AdjustDifficulty(base Difficulty, level profile.SkillLevel) Difficulty {
	if level.Rank() >= profile.LevelIntermediate.Rank() && base == DifficultyBeginner {
		return DifficultyIntermediate
	}
	if level.Rank() >= profile.LevelAdvanced.Rank() && base == DifficultyIntermediate {
		return DifficultyAdvanced
	}
	return base
}

// AdjustForLearner applies AdjustDifficulty to every topic of every phase
// in place. The curriculum must already be the caller's own copy.
func (c *Curriculum) AdjustForLearner(level profile.SkillLevel) {
	for pi := range c.Phases {
		topics := c.Phases[pi].Topics
		for ti := range topics {
			topics[ti].Difficulty = AdjustDifficulty(topics[ti].Difficulty, level)
		}
	}
}
