// Package resource models recommended learning materials and the randomized
// per-topic selection applied during roadmap generation.
package resource

import (
	"github.com/flowlabs/flowmap/pkg/domain/curriculum"
	"github.com/flowlabs/flowmap/pkg/domain/profile"
)

// Entry is a single curated learning material.
type Entry struct {
	Title       string  `json:"title" yaml:"title"`
	URL         string  `json:"url,omitempty" yaml:"url,omitempty"`
	Provider    string  `json:"provider,omitempty" yaml:"provider,omitempty"`
	Author      string  `json:"author,omitempty" yaml:"author,omitempty"`
	ISBN        string  `json:"isbn,omitempty" yaml:"isbn,omitempty"`
	Rating      float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
	Duration    string  `json:"duration,omitempty" yaml:"duration,omitempty"`
	Level       string  `json:"level,omitempty" yaml:"level,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// Bucket groups candidate entries by content format for one topic type.
type Bucket map[profile.Format][]Entry

// Map holds the selected resources per topic id, in requested-format order.
// Formats with no candidates contribute nothing; a Map never contains
// placeholder entries.
type Map map[string][]Entry

// Catalog is a read-only source of resource buckets keyed by topic type.
// Unregistered topic types resolve to a general-interest bucket.
type Catalog interface {
	Bucket(t curriculum.TopicType) Bucket
}
