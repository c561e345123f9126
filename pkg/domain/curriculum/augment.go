package curriculum

import "strings"

// AugmentRule appends a supplementary topic to every phase whose title
// contains PhaseKeyword whenever the learner's free-text interests contain
// Keyword. Matching is substring-based and case-insensitive on both sides.
type AugmentRule struct {
	Keyword      string
	PhaseKeyword string
	Topic        Topic
}

// DefaultAugmentRules returns the built-in interest rules.
func DefaultAugmentRules() []AugmentRule {
	return []AugmentRule{
		{
			Keyword:      "tensorflow",
			PhaseKeyword: "implementation",
			Topic: Topic{
				ID:          "tensorflow-spec",
				Title:       "TensorFlow Deep Dive",
				Description: "Advanced TensorFlow concepts and implementation",
				Duration:    "2 weeks",
				Difficulty:  DifficultyIntermediate,
				Type:        TypeFramework,
			},
		},
		{
			Keyword:      "pytorch",
			PhaseKeyword: "implementation",
			Topic: Topic{
				ID:          "pytorch-spec",
				Title:       "PyTorch Mastery",
				Description: "Comprehensive PyTorch training and best practices",
				Duration:    "2 weeks",
				Difficulty:  DifficultyIntermediate,
				Type:        TypeFramework,
			},
		},
		{
			Keyword:      "ethics",
			PhaseKeyword: "advanced",
			Topic: Topic{
				ID:          "ai-ethics-spec",
				Title:       "AI Ethics & Responsible AI",
				Description: "Understanding bias, fairness, and ethical AI development",
				Duration:    "1 week",
				Difficulty:  DifficultyIntermediate,
				Type:        TypeTheory,
			},
		},
	}
}

// Augmenter integrates a learner's specific interests into a curriculum by
// appending fixed supplementary topics to matching phases.
type Augmenter struct {
	rules []AugmentRule
}

// NewAugmenter creates an augmenter with the given rules. With no rules it
// uses DefaultAugmentRules.
func NewAugmenter(rules ...AugmentRule) *Augmenter {
	if len(rules) == 0 {
		rules = DefaultAugmentRules()
	}
	return &Augmenter{rules: rules}
}

// Augment appends rule topics to the curriculum's matching phases, in place.
// Empty interest text is a no-op. A rule may append to multiple phases when
// several phase titles match.
func (a *Augmenter) Augment(c *Curriculum, interests string) {
	interests = strings.ToLower(interests)
	if strings.TrimSpace(interests) == "" {
		return
	}

	for _, rule := range a.rules {
		if !strings.Contains(interests, rule.Keyword) {
			continue
		}
		for pi := range c.Phases {
			title := strings.ToLower(c.Phases[pi].Title)
			if strings.Contains(title, rule.PhaseKeyword) {
				c.Phases[pi].Topics = append(c.Phases[pi].Topics, rule.Topic)
			}
		}
	}
}
