// Package storage provides the built-in curriculum and resource catalogs and
// the filesystem-backed workspace repository.
package storage

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/flowlabs/flowmap/pkg/domain/curriculum"
	"github.com/flowlabs/flowmap/pkg/domain/profile"
	"github.com/flowlabs/flowmap/pkg/domain/resource"
)

//go:embed data/templates.yaml data/resources.yaml
var embeddedData embed.FS

// DefaultDomain is the curriculum domain used when a requested domain has no
// templates.
const DefaultDomain = "Machine Learning"

// FallbackLevel is the skill level used when a domain has no templates for
// the requested level.
const FallbackLevel = profile.LevelBeginner

// GeneralBucket keys the topic-type-agnostic resource bucket used when a
// topic type has no dedicated resources.
const GeneralBucket curriculum.TopicType = "general"

type templateFile struct {
	Domains map[string]map[string]*curriculum.Curriculum `yaml:"domains"`
}

type resourceFile struct {
	Types map[string]map[string][]resource.Entry `yaml:"types"`
}

// TemplateCatalog resolves (domain, level) pairs to curriculum templates.
// Every lookup returns an independent deep copy, so callers may adapt the
// result without affecting later lookups.
type TemplateCatalog struct {
	domains map[string]map[profile.SkillLevel]*curriculum.Curriculum
}

// NewTemplateCatalog builds a catalog from pre-parsed templates.
func NewTemplateCatalog(domains map[string]map[profile.SkillLevel]*curriculum.Curriculum) *TemplateCatalog {
	return &TemplateCatalog{domains: domains}
}

// ParseTemplateCatalog parses YAML template data into a catalog.
func ParseTemplateCatalog(data []byte) (*TemplateCatalog, error) {
	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse template catalog: %w", err)
	}
	domains := make(map[string]map[profile.SkillLevel]*curriculum.Curriculum, len(file.Domains))
	for domain, levels := range file.Domains {
		byLevel := make(map[profile.SkillLevel]*curriculum.Curriculum, len(levels))
		for level, c := range levels {
			byLevel[profile.SkillLevel(level)] = c
		}
		domains[domain] = byLevel
	}
	return NewTemplateCatalog(domains), nil
}

// EmbeddedTemplateCatalog loads the catalog compiled into the binary.
func EmbeddedTemplateCatalog() (*TemplateCatalog, error) {
	data, err := embeddedData.ReadFile("data/templates.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded templates: %w", err)
	}
	return ParseTemplateCatalog(data)
}

// Lookup implements curriculum.Catalog. Unknown domains resolve to
// DefaultDomain and unknown levels to FallbackLevel, so generation degrades
// instead of failing on unrecognized profile input.
func (tc *TemplateCatalog) Lookup(domain string, level profile.SkillLevel) (*curriculum.Curriculum, error) {
	byLevel, ok := tc.domains[domain]
	if !ok {
		byLevel, ok = tc.domains[DefaultDomain]
		if !ok {
			return nil, fmt.Errorf("no templates for domain %q and no %q fallback", domain, DefaultDomain)
		}
	}
	c, ok := byLevel[level]
	if !ok {
		c, ok = byLevel[FallbackLevel]
		if !ok {
			return nil, fmt.Errorf("no %q template for domain %q", FallbackLevel, domain)
		}
	}
	return c.Clone(), nil
}

// Domains returns the catalog's domain names sorted alphabetically.
func (tc *TemplateCatalog) Domains() []string {
	names := make([]string, 0, len(tc.domains))
	for name := range tc.domains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Levels returns the skill levels available for a domain in ascending order.
func (tc *TemplateCatalog) Levels(domain string) []profile.SkillLevel {
	byLevel, ok := tc.domains[domain]
	if !ok {
		return nil
	}
	levels := make([]profile.SkillLevel, 0, len(byLevel))
	for _, l := range profile.AllSkillLevels() {
		if _, ok := byLevel[l]; ok {
			levels = append(levels, l)
		}
	}
	return levels
}

// ResourceCatalog resolves topic types to curated resource buckets.
type ResourceCatalog struct {
	types map[curriculum.TopicType]resource.Bucket
}

// NewResourceCatalog builds a catalog from pre-parsed buckets.
func NewResourceCatalog(types map[curriculum.TopicType]resource.Bucket) *ResourceCatalog {
	return &ResourceCatalog{types: types}
}

// ParseResourceCatalog parses YAML resource data into a catalog.
func ParseResourceCatalog(data []byte) (*ResourceCatalog, error) {
	var file resourceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse resource catalog: %w", err)
	}
	types := make(map[curriculum.TopicType]resource.Bucket, len(file.Types))
	for topicType, formats := range file.Types {
		bucket := make(resource.Bucket, len(formats))
		for format, entries := range formats {
			bucket[profile.Format(format)] = entries
		}
		types[curriculum.TopicType(topicType)] = bucket
	}
	return NewResourceCatalog(types), nil
}

// EmbeddedResourceCatalog loads the catalog compiled into the binary.
func EmbeddedResourceCatalog() (*ResourceCatalog, error) {
	data, err := embeddedData.ReadFile("data/resources.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded resources: %w", err)
	}
	return ParseResourceCatalog(data)
}

// Bucket implements resource.Catalog. Topic types without a dedicated bucket
// resolve to the general-interest bucket; an empty Bucket is returned when
// even that is missing.
func (rc *ResourceCatalog) Bucket(t curriculum.TopicType) resource.Bucket {
	if b, ok := rc.types[t]; ok {
		return b
	}
	if b, ok := rc.types[GeneralBucket]; ok {
		return b
	}
	return resource.Bucket{}
}
