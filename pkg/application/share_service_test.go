package application_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/flowlabs/flowmap/pkg/application"
	"github.com/flowlabs/flowmap/pkg/domain/roadmap"
	"github.com/flowlabs/flowmap/pkg/storage"
)

func TestShareService_LinkFor(t *testing.T) {
	rm := exportRoadmap()

	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{"default base", "", "https://flowmap.dev/shared/rm-1"},
		{"custom base", "https://learn.example.com", "https://learn.example.com/shared/rm-1"},
		{"trailing slash trimmed", "https://learn.example.com/", "https://learn.example.com/shared/rm-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := application.NewShareService(nil, tt.baseURL)
			if got := svc.LinkFor(rm); got != tt.want {
				t.Errorf("LinkFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShareService_Link(t *testing.T) {
	repo := storage.NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	svc := application.NewShareService(repo, "")

	if _, err := svc.Link(); err != roadmap.ErrNoRoadmap {
		t.Fatalf("expected ErrNoRoadmap, got %v", err)
	}

	if err := repo.SaveRoadmap(exportRoadmap()); err != nil {
		t.Fatalf("SaveRoadmap: %v", err)
	}
	link, err := svc.Link()
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	if link != "https://flowmap.dev/shared/rm-1" {
		t.Errorf("Link() = %q", link)
	}
}

func TestShareService_SocialURLs(t *testing.T) {
	svc := application.NewShareService(nil, "")
	rm := exportRoadmap()

	email := svc.EmailURL(rm)
	if !strings.HasPrefix(email, "mailto:?subject=") {
		t.Errorf("EmailURL() = %q", email)
	}
	if !strings.Contains(email, url.QueryEscape(rm.Title)) {
		t.Error("email subject does not mention the roadmap title")
	}

	tweet := svc.TwitterURL(rm)
	if !strings.HasPrefix(tweet, "https://twitter.com/intent/tweet?") {
		t.Errorf("TwitterURL() = %q", tweet)
	}
	if !strings.Contains(tweet, "hashtags=learning,AI,roadmap") {
		t.Error("tweet intent is missing the hashtags")
	}
	if !strings.Contains(tweet, url.QueryEscape(svc.LinkFor(rm))) {
		t.Error("tweet intent does not carry the share link")
	}

	linkedin := svc.LinkedInURL(rm)
	if !strings.HasPrefix(linkedin, "https://linkedin.com/sharing/share-offsite/?") {
		t.Errorf("LinkedInURL() = %q", linkedin)
	}
	if !strings.Contains(linkedin, url.QueryEscape(svc.LinkFor(rm))) {
		t.Error("linkedin share does not carry the share link")
	}
}
