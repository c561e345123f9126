package application

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/flowlabs/flowmap/pkg/domain"
	"github.com/flowlabs/flowmap/pkg/domain/roadmap"
)

// ExportFormat selects the rendering applied by the export service.
type ExportFormat string

const (
	ExportMarkdown ExportFormat = "markdown"
	ExportText     ExportFormat = "text"
	ExportJSON     ExportFormat = "json"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// ExportService renders the current roadmap as a shareable document.
type ExportService struct {
	repo  domain.WorkspaceRepository
	audit domain.AuditLogger
	actor string
}

func NewExportService(repo domain.WorkspaceRepository, audit domain.AuditLogger) *ExportService {
	return &ExportService{repo: repo, audit: audit, actor: "cli"}
}

// SetActor changes the actor recorded on audit events.
func (s *ExportService) SetActor(actor string) {
	s.actor = actor
}

// Export renders the workspace's current roadmap in the requested format.
func (s *ExportService) Export(format ExportFormat) (string, error) {
	rm, err := s.repo.LoadRoadmap()
	if err != nil {
		return "", err
	}

	if err := s.audit.Log("roadmap.export", s.actor, map[string]interface{}{
		"format": string(format),
	}); err != nil {
		return "", fmt.Errorf("write audit log: %w", err)
	}

	return Render(rm, format)
}

// Render produces the document for one roadmap without touching the
// workspace.
func Render(rm *roadmap.Roadmap, format ExportFormat) (string, error) {
	switch format {
	case ExportMarkdown:
		return renderMarkdown(rm), nil
	case ExportText:
		return renderText(rm), nil
	case ExportJSON:
		data, err := json.MarshalIndent(rm, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal roadmap: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown export format: %s", format)
	}
}

// FileName derives the download file name for a roadmap export, collapsing
// whitespace in the title to hyphens.
func FileName(rm *roadmap.Roadmap, format ExportFormat) string {
	base := whitespacePattern.ReplaceAllString(rm.Title, "-")
	switch format {
	case ExportMarkdown:
		return base + "-roadmap.md"
	case ExportJSON:
		return base + "-roadmap.json"
	default:
		return base + "-roadmap.txt"
	}
}

func renderMarkdown(rm *roadmap.Roadmap) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", rm.Title)
	fmt.Fprintf(&b, "%s\n\n", rm.Description)

	b.WriteString("## Learning Profile\n\n")
	fmt.Fprintf(&b, "- **Level:** %s\n", rm.UserProfile.Level)
	fmt.Fprintf(&b, "- **Time Commitment:** %s hours/week\n", rm.UserProfile.TimeCommitment)
	fmt.Fprintf(&b, "- **Domain:** %s\n", rm.UserProfile.Domain)
	fmt.Fprintf(&b, "- **Estimated Duration:** %d weeks (%d months)\n\n",
		rm.EstimatedDuration.Weeks, rm.EstimatedDuration.Months)

	for phaseIndex, phase := range rm.Curriculum.Phases {
		fmt.Fprintf(&b, "## Phase %d: %s\n\n", phaseIndex+1, phase.Title)
		fmt.Fprintf(&b, "%s\n\n", phase.Description)

		for topicIndex, topic := range phase.Topics {
			fmt.Fprintf(&b, "### %d. %s\n\n", topicIndex+1, topic.Title)
			fmt.Fprintf(&b, "%s\n\n", topic.Description)
			fmt.Fprintf(&b, "- **Duration:** %s\n", topic.Duration)
			fmt.Fprintf(&b, "- **Difficulty:** %s\n", topic.Difficulty)
			fmt.Fprintf(&b, "- **Type:** %s\n\n", topic.Type)

			if picks := rm.Resources[topic.ID]; len(picks) > 0 {
				b.WriteString("**Recommended Resources:**\n")
				for _, r := range picks {
					fmt.Fprintf(&b, "- [%s](%s)\n", r.Title, r.URL)
				}
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("---\n\n")
	b.WriteString("*Generated by flowmap*\n")

	return b.String()
}

func renderText(rm *roadmap.Roadmap) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", rm.Title)
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", len(rm.Title)))
	fmt.Fprintf(&b, "%s\n\n", rm.Description)

	b.WriteString("LEARNING PROFILE\n")
	b.WriteString("---------------\n")
	fmt.Fprintf(&b, "Level: %s\n", rm.UserProfile.Level)
	fmt.Fprintf(&b, "Time Commitment: %s hours/week\n", rm.UserProfile.TimeCommitment)
	fmt.Fprintf(&b, "Domain: %s\n", rm.UserProfile.Domain)
	fmt.Fprintf(&b, "Estimated Duration: %d weeks (%d months)\n\n",
		rm.EstimatedDuration.Weeks, rm.EstimatedDuration.Months)

	for phaseIndex, phase := range rm.Curriculum.Phases {
		fmt.Fprintf(&b, "PHASE %d: %s\n", phaseIndex+1, strings.ToUpper(phase.Title))
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", len(phase.Title)+10))
		fmt.Fprintf(&b, "%s\n\n", phase.Description)

		for topicIndex, topic := range phase.Topics {
			fmt.Fprintf(&b, "  %d. %s\n", topicIndex+1, topic.Title)
			fmt.Fprintf(&b, "     %s\n", topic.Description)
			fmt.Fprintf(&b, "     Duration: %s | Difficulty: %s | Type: %s\n\n",
				topic.Duration, topic.Difficulty, topic.Type)
		}
		b.WriteString("\n")
	}

	return b.String()
}
