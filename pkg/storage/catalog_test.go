package storage_test

import (
	"testing"

	"github.com/flowlabs/flowmap/pkg/domain/curriculum"
	"github.com/flowlabs/flowmap/pkg/domain/profile"
	"github.com/flowlabs/flowmap/pkg/storage"
)

func TestEmbeddedTemplateCatalog(t *testing.T) {
	tc, err := storage.EmbeddedTemplateCatalog()
	if err != nil {
		t.Fatalf("load embedded templates: %v", err)
	}

	domains := tc.Domains()
	if len(domains) == 0 {
		t.Fatal("embedded catalog has no domains")
	}

	found := false
	for _, d := range domains {
		if d == storage.DefaultDomain {
			found = true
		}
	}
	if !found {
		t.Fatalf("embedded catalog is missing the %q fallback domain", storage.DefaultDomain)
	}

	c, err := tc.Lookup(storage.DefaultDomain, profile.LevelBeginner)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(c.Phases) == 0 || c.TopicCount() == 0 {
		t.Error("beginner machine learning template has no content")
	}
}

func TestTemplateCatalog_Lookup_Fallbacks(t *testing.T) {
	tc, err := storage.EmbeddedTemplateCatalog()
	if err != nil {
		t.Fatalf("load embedded templates: %v", err)
	}

	tests := []struct {
		name   string
		domain string
		level  profile.SkillLevel
	}{
		{"unknown domain falls back", "Underwater Basket Weaving", profile.LevelBeginner},
		{"unknown level falls back", storage.DefaultDomain, profile.SkillLevel("grandmaster")},
		{"both unknown", "Underwater Basket Weaving", profile.SkillLevel("grandmaster")},
	}

	want, err := tc.Lookup(storage.DefaultDomain, storage.FallbackLevel)
	if err != nil {
		t.Fatalf("fallback lookup: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tc.Lookup(tt.domain, tt.level)
			if err != nil {
				t.Fatalf("Lookup: %v", err)
			}
			if got.Title != want.Title {
				t.Errorf("Lookup resolved to %q, want the %q fallback", got.Title, want.Title)
			}
		})
	}
}

func TestTemplateCatalog_Lookup_ReturnsIndependentCopies(t *testing.T) {
	tc, err := storage.EmbeddedTemplateCatalog()
	if err != nil {
		t.Fatalf("load embedded templates: %v", err)
	}

	first, err := tc.Lookup(storage.DefaultDomain, profile.LevelBeginner)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	first.Phases[0].Topics[0].Title = "mutated"
	first.Phases[0].Topics = append(first.Phases[0].Topics, curriculum.Topic{ID: "extra"})

	second, err := tc.Lookup(storage.DefaultDomain, profile.LevelBeginner)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if second.Phases[0].Topics[0].Title == "mutated" {
		t.Error("lookups share topic storage")
	}
	if len(second.Phases[0].Topics) != len(first.Phases[0].Topics)-1 {
		t.Error("appending to one lookup grew the next")
	}
}

func TestTemplateCatalog_Levels(t *testing.T) {
	tc, err := storage.EmbeddedTemplateCatalog()
	if err != nil {
		t.Fatalf("load embedded templates: %v", err)
	}

	levels := tc.Levels(storage.DefaultDomain)
	if len(levels) == 0 {
		t.Fatal("no levels for the default domain")
	}
	ranks := make([]int, 0, len(levels))
	for _, l := range levels {
		ranks = append(ranks, l.Rank())
	}
	for i := 1; i < len(ranks); i++ {
		if ranks[i] <= ranks[i-1] {
			t.Errorf("levels not in ascending order: %v", levels)
		}
	}

	if got := tc.Levels("Unknown Domain"); got != nil {
		t.Errorf("expected nil levels for unknown domain, got %v", got)
	}
}

func TestEmbeddedResourceCatalog(t *testing.T) {
	rc, err := storage.EmbeddedResourceCatalog()
	if err != nil {
		t.Fatalf("load embedded resources: %v", err)
	}

	theory := rc.Bucket(curriculum.TypeTheory)
	if len(theory) == 0 {
		t.Fatal("theory bucket is empty")
	}
	for format, entries := range theory {
		for _, e := range entries {
			if e.Title == "" {
				t.Errorf("untitled %s resource in theory bucket", format)
			}
		}
	}
}

func TestResourceCatalog_Bucket_GeneralFallback(t *testing.T) {
	rc, err := storage.EmbeddedResourceCatalog()
	if err != nil {
		t.Fatalf("load embedded resources: %v", err)
	}

	general := rc.Bucket(storage.GeneralBucket)
	if len(general) == 0 {
		t.Fatal("general bucket is empty")
	}

	unknown := rc.Bucket(curriculum.TopicType("interpretive-dance"))
	if len(unknown) != len(general) {
		t.Error("unknown topic type did not fall back to the general bucket")
	}
}

func TestParseTemplateCatalog_Invalid(t *testing.T) {
	if _, err := storage.ParseTemplateCatalog([]byte("{not yaml")); err == nil {
		t.Error("expected error for malformed template data")
	}
	if _, err := storage.ParseResourceCatalog([]byte("{not yaml")); err == nil {
		t.Error("expected error for malformed resource data")
	}
}
