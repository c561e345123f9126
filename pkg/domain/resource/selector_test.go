package resource_test

import (
	"testing"

	"github.com/flowlabs/flowmap/pkg/domain/curriculum"
	"github.com/flowlabs/flowmap/pkg/domain/profile"
	"github.com/flowlabs/flowmap/pkg/domain/resource"
)

type fixedRand struct{ n int }

func (r fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

type stubCatalog struct {
	buckets map[curriculum.TopicType]resource.Bucket
}

func (c stubCatalog) Bucket(t curriculum.TopicType) resource.Bucket {
	if b, ok := c.buckets[t]; ok {
		return b
	}
	return c.buckets["general"]
}

func testCatalog() stubCatalog {
	return stubCatalog{buckets: map[curriculum.TopicType]resource.Bucket{
		curriculum.TypeTheory: {
			profile.FormatVideos: []resource.Entry{
				{Title: "Theory Video 1"},
				{Title: "Theory Video 2"},
			},
			profile.FormatBooks: []resource.Entry{
				{Title: "Theory Book"},
			},
		},
		"general": {
			profile.FormatVideos: []resource.Entry{{Title: "General Video"}},
		},
	}}
}

func testCurriculum() *curriculum.Curriculum {
	return &curriculum.Curriculum{
		Phases: []curriculum.Phase{{
			Topics: []curriculum.Topic{
				{ID: "t1", Type: curriculum.TypeTheory},
				{ID: "t2", Type: curriculum.TypeProjects},
			},
		}},
	}
}

func TestSelector_Select(t *testing.T) {
	sel := resource.NewSelector(testCatalog(), fixedRand{0})
	picks := sel.Select(testCurriculum(), []profile.Format{profile.FormatVideos, profile.FormatBooks})

	if len(picks) != 2 {
		t.Fatalf("expected picks for 2 topics, got %d", len(picks))
	}

	t1 := picks["t1"]
	if len(t1) != 2 {
		t.Fatalf("expected 2 picks for t1, got %d", len(t1))
	}
	if t1[0].Title != "Theory Video 1" || t1[1].Title != "Theory Book" {
		t.Errorf("unexpected t1 picks: %+v", t1)
	}

	// projects has no dedicated bucket; it falls back to general, which has
	// no books, so only the video pick survives.
	t2 := picks["t2"]
	if len(t2) != 1 || t2[0].Title != "General Video" {
		t.Errorf("unexpected t2 picks: %+v", t2)
	}
}

func TestSelector_Select_RandomIndexRespected(t *testing.T) {
	sel := resource.NewSelector(testCatalog(), fixedRand{1})
	picks := sel.Select(testCurriculum(), []profile.Format{profile.FormatVideos})

	if picks["t1"][0].Title != "Theory Video 2" {
		t.Errorf("expected second candidate, got %+v", picks["t1"])
	}
}

func TestSelector_Select_NoPlaceholders(t *testing.T) {
	sel := resource.NewSelector(testCatalog(), fixedRand{0})
	picks := sel.Select(testCurriculum(), []profile.Format{profile.FormatPodcasts})

	for id, entries := range picks {
		if len(entries) != 0 {
			t.Errorf("expected no picks for %s, got %+v", id, entries)
		}
		for _, e := range entries {
			if e.Title == "" {
				t.Errorf("placeholder entry for %s", id)
			}
		}
	}
}

func TestSelector_Select_NoFormats(t *testing.T) {
	sel := resource.NewSelector(testCatalog(), fixedRand{0})
	picks := sel.Select(testCurriculum(), nil)

	if len(picks) != 2 {
		t.Fatalf("expected empty pick lists for every topic, got %d", len(picks))
	}
	for id, entries := range picks {
		if len(entries) != 0 {
			t.Errorf("expected no picks for %s", id)
		}
	}
}

func TestNewSelector_NilRand(t *testing.T) {
	sel := resource.NewSelector(testCatalog(), nil)
	picks := sel.Select(testCurriculum(), []profile.Format{profile.FormatVideos})
	for _, e := range picks["t1"] {
		if e.Title == "" {
			t.Error("time-seeded selector produced a placeholder")
		}
	}
}
