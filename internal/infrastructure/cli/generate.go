package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xeipuuv/gojsonschema"

	"github.com/flowlabs/flowmap/pkg/domain/profile"
)

const profileSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["learning_goal", "domain"],
  "properties": {
    "learning_goal": { "type": "string", "minLength": 1 },
    "current_level": { "type": "string", "enum": ["beginner", "intermediate", "advanced"] },
    "time_commitment": { "type": "string", "enum": ["1-5", "5-10", "10-20", "20+"] },
    "preferred_formats": {
      "type": "array",
      "items": { "type": "string", "enum": ["videos", "books", "articles", "interactive", "podcasts"] }
    },
    "domain": { "type": "string", "minLength": 1 },
    "specific_topics": { "type": "string" },
    "output_format": { "type": "string", "enum": ["interactive", "pdf", "checklist"] }
  }
}`

var profileSchemaLoader = gojsonschema.NewStringLoader(profileSchemaJSON)

var (
	generateGoal    string
	generateLevel   string
	generateTime    string
	generateFormats []string
	generateDomain  string
	generateTopics  string
	generateOutput  string
	generateProfile string
	generateJSON    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a personalized learning roadmap from a learner profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		if err := services.Workspace.Repo.Initialize(); err != nil {
			return MapError(err)
		}

		p, err := resolveProfile()
		if err != nil {
			return err
		}

		rm, err := services.Generator().Generate(cmd.Context(), p)
		if err != nil {
			return MapError(fmt.Errorf("failed to generate roadmap: %w", err))
		}

		if generateJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rm)
		}

		fmt.Printf("Successfully generated roadmap: %s\n", rm.Title)
		fmt.Printf("Roadmap ID: %s\n", rm.ID)
		fmt.Printf("Estimated duration: %d weeks (%d months)\n",
			rm.EstimatedDuration.Weeks, rm.EstimatedDuration.Months)
		fmt.Printf("Phases: %d, Topics: %d\n", len(rm.Curriculum.Phases), rm.Curriculum.TopicCount())
		for _, m := range rm.Milestones() {
			fmt.Printf("- %s (weeks %d-%d)\n", m.Title, m.StartWeek, m.EndWeek)
		}
		fmt.Println("\nRun 'flowmap view' to browse the timeline.")
		return nil
	},
}

// resolveProfile builds the learner profile from --profile or the individual
// flags. Profile files are validated against the intake schema before use.
func resolveProfile() (profile.UserProfile, error) {
	if generateProfile != "" {
		return loadProfileFile(generateProfile)
	}

	if generateGoal == "" || generateDomain == "" {
		return profile.UserProfile{}, NewCLIError(
			"missing learner profile",
			"Provide --goal and --domain, or a --profile file",
			nil,
		)
	}

	formats := make([]profile.Format, 0, len(generateFormats))
	for _, f := range generateFormats {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, profile.Format(f))
		}
	}

	return profile.UserProfile{
		LearningGoal:     generateGoal,
		CurrentLevel:     profile.SkillLevel(generateLevel),
		TimeCommitment:   profile.TimeCommitment(generateTime),
		PreferredFormats: formats,
		Domain:           generateDomain,
		SpecificTopics:   generateTopics,
		OutputFormat:     profile.OutputFormat(generateOutput),
	}, nil
}

func loadProfileFile(path string) (profile.UserProfile, error) {
	// #nosec G304 -- Path is user-supplied on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return profile.UserProfile{}, fmt.Errorf("read profile file: %w", err)
	}

	result, err := gojsonschema.Validate(profileSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return profile.UserProfile{}, fmt.Errorf("validate profile: %w", err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return profile.UserProfile{}, NewCLIError(
			fmt.Sprintf("invalid profile file: %s", strings.Join(problems, "; ")),
			"Fix the listed fields and retry",
			nil,
		)
	}

	var p profile.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return profile.UserProfile{}, fmt.Errorf("parse profile file: %w", err)
	}
	return p, nil
}

func init() {
	generateCmd.Flags().StringVar(&generateGoal, "goal", "", "What the learner wants to achieve")
	generateCmd.Flags().StringVar(&generateLevel, "level", "beginner", "Current skill level (beginner, intermediate, advanced)")
	generateCmd.Flags().StringVar(&generateTime, "time", "5-10", "Weekly hour bucket (1-5, 5-10, 10-20, 20+)")
	generateCmd.Flags().StringSliceVar(&generateFormats, "formats", []string{"videos", "books"}, "Preferred content formats")
	generateCmd.Flags().StringVar(&generateDomain, "domain", "", "AI domain to study (see 'flowmap catalog domains')")
	generateCmd.Flags().StringVar(&generateTopics, "topics", "", "Free-text interests used to augment the curriculum")
	generateCmd.Flags().StringVar(&generateOutput, "output", "interactive", "Output format preference (interactive, pdf, checklist)")
	generateCmd.Flags().StringVar(&generateProfile, "profile", "", "Path to a JSON profile file (overrides the other flags)")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Print the full roadmap as JSON")
	RootCmd.AddCommand(generateCmd)
}
