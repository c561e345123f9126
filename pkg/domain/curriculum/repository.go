package curriculum

import "github.com/flowlabs/flowmap/pkg/domain/profile"

// Catalog is a read-only source of curriculum templates keyed by domain and
// level. Lookup resolves unknown domains to a default domain and unknown
// levels to the beginner template, and always returns an independent deep
// copy: callers may mutate the result without affecting the catalog or any
// concurrent caller.
type Catalog interface {
	Lookup(domain string, level profile.SkillLevel) (*Curriculum, error)
}
