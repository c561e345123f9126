// Package curriculum defines the template data model: ordered phases of
// topics, and the per-learner adaptations applied to them.
package curriculum

// Difficulty grades a single topic. It shares the beginner < intermediate
// < advanced ordering with profile.SkillLevel but grades content, not people.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Rank maps the difficulty onto its total order. Unknown values rank 0.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	default:
		return 0
	}
}

// String returns the string representation of the difficulty.
func (d Difficulty) String() string {
	return string(d)
}

// TopicType categorizes a topic's content.
type TopicType string

const (
	TypeTheory    TopicType = "theory"
	TypePractical TopicType = "practical"
	TypeFramework TopicType = "framework"
	TypeProjects  TopicType = "projects"

	// TypeMilestone marks synthetic phase-completion timeline entries.
	// It never appears on curriculum topics.
	TypeMilestone TopicType = "milestone"
)

// Topic is an atomic unit of learning content.
type Topic struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Duration    string     `json:"duration" yaml:"duration"` // e.g. "2 weeks"
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	Type        TopicType  `json:"type" yaml:"type"`
}

// Phase is a named stage of a curriculum containing an ordered topic sequence.
type Phase struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Topics      []Topic `json:"topics" yaml:"topics"`
}

// Curriculum is a domain+level learning path: ordered phases in execution
// order. Instances handed out by a Catalog are independent copies, so callers
// may adapt them freely.
type Curriculum struct {
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Phases      []Phase `json:"phases" yaml:"phases"`
}

// Clone returns a deep copy sharing no mutable sub-structures with the
// receiver. Catalogs rely on this for their copy-on-read contract.
func (c *Curriculum) Clone() *Curriculum {
	if c == nil {
		return nil
	}
	out := &Curriculum{
		Title:       c.Title,
		Description: c.Description,
	}
	if c.Phases != nil {
		out.Phases = make([]Phase, len(c.Phases))
		for i, p := range c.Phases {
			cp := p
			if p.Topics != nil {
				cp.Topics = make([]Topic, len(p.Topics))
				copy(cp.Topics, p.Topics)
			}
			out.Phases[i] = cp
		}
	}
	return out
}

// TopicCount returns the number of topics across all phases.
func (c *Curriculum) TopicCount() int {
	n := 0
	for _, p := range c.Phases {
		n += len(p.Topics)
	}
	return n
}

// TopicIDs returns the ids of all topics in phase order.
func (c *Curriculum) TopicIDs() []string {
	ids := make([]string, 0, c.TopicCount())
	for _, p := range c.Phases {
		for _, t := range p.Topics {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
