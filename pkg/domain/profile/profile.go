// Package profile defines the learner profile submitted to the roadmap
// generator and the value objects it is built from.
package profile

// SkillLevel describes a learner's (or a topic's audience) proficiency.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
)

// AllSkillLevels returns all valid skill levels in ascending order.
func AllSkillLevels() []SkillLevel {
	return []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// IsValid returns true if the level is one of the known skill levels.
func (l SkillLevel) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

// Rank maps the level onto the total order beginner < intermediate < advanced.
// Unknown levels rank 0, below beginner, so they never trigger a promotion.
func (l SkillLevel) Rank() int {
	switch l {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	default:
		return 0
	}
}

// String returns the string representation of the level.
func (l SkillLevel) String() string {
	return string(l)
}

// TimeCommitment is the learner's weekly hour bucket, as collected by the
// intake form ("1-5", "5-10", "10-20", "20+").
type TimeCommitment string

const (
	TimeMinimal  TimeCommitment = "1-5"
	TimeModerate TimeCommitment = "5-10"
	TimeSerious  TimeCommitment = "10-20"
	TimeIntense  TimeCommitment = "20+"
)

// DefaultHoursPerWeek is assumed when the commitment bucket is unrecognized.
const DefaultHoursPerWeek = 7

// HoursPerWeek resolves the bucket to a concrete hours-per-week budget.
func (t TimeCommitment) HoursPerWeek() int {
	switch t {
	case TimeMinimal:
		return 3
	case TimeModerate:
		return 7
	case TimeSerious:
		return 15
	case TimeIntense:
		return 25
	default:
		return DefaultHoursPerWeek
	}
}

// String returns the string representation of the bucket.
func (t TimeCommitment) String() string {
	return string(t)
}

// Format is a learning-content format tag (videos, books, articles, ...).
type Format string

const (
	FormatVideos      Format = "videos"
	FormatBooks       Format = "books"
	FormatArticles    Format = "articles"
	FormatInteractive Format = "interactive"
	FormatPodcasts    Format = "podcasts"
)

// OutputFormat selects how the generated roadmap is presented.
type OutputFormat string

const (
	OutputInteractive OutputFormat = "interactive"
	OutputDocument    OutputFormat = "pdf"
	OutputChecklist   OutputFormat = "checklist"
)

// UserProfile is the immutable input to roadmap generation. Unrecognized
// field values degrade gracefully downstream (catalog and scheduler
// fallbacks); they are never rejected here.
type UserProfile struct {
	LearningGoal     string         `json:"learning_goal" yaml:"learning_goal"`
	CurrentLevel     SkillLevel     `json:"current_level" yaml:"current_level"`
	TimeCommitment   TimeCommitment `json:"time_commitment" yaml:"time_commitment"`
	PreferredFormats []Format       `json:"preferred_formats" yaml:"preferred_formats"`
	Domain           string         `json:"domain" yaml:"domain"`
	SpecificTopics   string         `json:"specific_topics,omitempty" yaml:"specific_topics,omitempty"`
	OutputFormat     OutputFormat   `json:"output_format" yaml:"output_format"`
}
