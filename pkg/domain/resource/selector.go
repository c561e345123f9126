package resource

import (
	"math/rand"
	"time"

	"github.com/flowlabs/flowmap/pkg/domain/curriculum"
	"github.com/flowlabs/flowmap/pkg/domain/profile"
)

// Rand is the random source used for resource picks. Selection varies across
// generations; injecting the source keeps tests deterministic.
type Rand interface {
	Intn(n int) int
}

// Selector picks one resource per requested format for every topic in a
// curriculum.
type Selector struct {
	catalog Catalog
	rng     Rand
}

// NewSelector creates a selector backed by the catalog and an optional random
// source. A nil source falls back to a time-seeded math/rand generator.
func NewSelector(catalog Catalog, rng Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- variety, not security
	}
	return &Selector{catalog: catalog, rng: rng}
}

// Select builds the resource map for the curriculum. For each topic it
// resolves the bucket for the topic's type, then picks one candidate
// uniformly at random per requested format, in the order given. Formats with
// no candidates are skipped, so every slice in the result is gap-free and at
// most len(formats) long.
func (s *Selector) Select(c *curriculum.Curriculum, formats []profile.Format) Map {
	selected := make(Map)

	for _, phase := range c.Phases {
		for _, topic := range phase.Topics {
			bucket := s.catalog.Bucket(topic.Type)

			picks := make([]Entry, 0, len(formats))
			for _, format := range formats {
				candidates := bucket[format]
				if len(candidates) == 0 {
					continue
				}
				picks = append(picks, candidates[s.rng.Intn(len(candidates))])
			}
			selected[topic.ID] = picks
		}
	}

	return selected
}
