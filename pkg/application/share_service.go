package application

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/flowlabs/flowmap/pkg/domain"
	"github.com/flowlabs/flowmap/pkg/domain/roadmap"
)

// DefaultShareBaseURL is used when no base URL is configured.
const DefaultShareBaseURL = "https://flowmap.dev"

// ShareService builds shareable links and social sharing URLs for the
// current roadmap.
type ShareService struct {
	repo    domain.WorkspaceRepository
	baseURL string
}

func NewShareService(repo domain.WorkspaceRepository, baseURL string) *ShareService {
	if baseURL == "" {
		baseURL = DefaultShareBaseURL
	}
	return &ShareService{repo: repo, baseURL: strings.TrimRight(baseURL, "/")}
}

// Link returns the shareable URL for the workspace's current roadmap.
func (s *ShareService) Link() (string, error) {
	rm, err := s.repo.LoadRoadmap()
	if err != nil {
		return "", err
	}
	return s.LinkFor(rm), nil
}

// LinkFor returns the shareable URL for a roadmap.
func (s *ShareService) LinkFor(rm *roadmap.Roadmap) string {
	return fmt.Sprintf("%s/shared/%s", s.baseURL, rm.ID)
}

// EmailURL returns a mailto URL pre-filled with the roadmap summary.
func (s *ShareService) EmailURL(rm *roadmap.Roadmap) string {
	subject := fmt.Sprintf("Check out my learning roadmap: %s", rm.Title)
	body := fmt.Sprintf(
		"I've created a personalized learning roadmap for %s!\n\nRoadmap: %s\nDuration: %d weeks\nTime commitment: %s hours/week\n\nView it here: %s",
		rm.UserProfile.Domain, rm.Title, rm.EstimatedDuration.Weeks, rm.UserProfile.TimeCommitment, s.LinkFor(rm))
	return fmt.Sprintf("mailto:?subject=%s&body=%s", url.QueryEscape(subject), url.QueryEscape(body))
}

// TwitterURL returns a tweet intent URL announcing the roadmap.
func (s *ShareService) TwitterURL(rm *roadmap.Roadmap) string {
	text := fmt.Sprintf("Just created my personalized %s learning roadmap! %d weeks to mastery. Check it out:",
		rm.UserProfile.Domain, rm.EstimatedDuration.Weeks)
	return fmt.Sprintf("https://twitter.com/intent/tweet?text=%s&url=%s&hashtags=learning,AI,roadmap",
		url.QueryEscape(text), url.QueryEscape(s.LinkFor(rm)))
}

// LinkedInURL returns a LinkedIn share URL for the roadmap.
func (s *ShareService) LinkedInURL(rm *roadmap.Roadmap) string {
	summary := fmt.Sprintf("My personalized %s learning roadmap - %d weeks to mastery!",
		rm.UserProfile.Domain, rm.EstimatedDuration.Weeks)
	return fmt.Sprintf("https://linkedin.com/sharing/share-offsite/?url=%s&title=%s&summary=%s",
		url.QueryEscape(s.LinkFor(rm)), url.QueryEscape(rm.Title), url.QueryEscape(summary))
}
