// Package mcp exposes roadmap generation and progress tracking to MCP
// clients.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/mcp-go"

	"github.com/flowlabs/flowmap/internal/infrastructure/wiring"
	"github.com/flowlabs/flowmap/pkg/application"
	"github.com/flowlabs/flowmap/pkg/domain/profile"
)

type Server struct {
	mcpServer   *mcp.Server
	progressSvc *application.ProgressService
	exportSvc   *application.ExportService
	shareSvc    *application.ShareService
	auditSvc    *application.AuditService
	services    *wiring.AppServices
	root        string
}

var (
	Version     = "dev"
	BuildCommit = "unknown"
	BuildDate   = "unknown"
)

// mcpErr returns a user-friendly error for MCP clients. Internal details
// are omitted from the returned message.
func mcpErr(friendly string) error {
	return fmt.Errorf("%s", friendly)
}

func NewServer(root string) (*Server, error) {
	services, err := wiring.BuildAppServices(root)
	if err != nil {
		return nil, fmt.Errorf("build services: %w", err)
	}
	services.SetActor("mcp")

	info := mcp.ServerInfo{
		Name:    "flowmap",
		Version: Version,
	}

	s := &Server{
		mcpServer: mcp.NewServer(info,
			mcp.WithTitle("Flowmap MCP Server"),
			mcp.WithDescription("Flowmap generates personalized learning roadmaps and tracks topic completion for MCP clients."),
			mcp.WithWebsiteURL("https://github.com/flowlabs/flowmap"),
			mcp.WithBuildInfo(BuildCommit, BuildDate),
			mcp.WithInstructions("Use tools to generate a roadmap from a learner profile, inspect the timeline, transition topics, and export documents."),
		),
		progressSvc: services.Progress,
		exportSvc:   services.Export,
		shareSvc:    services.Share,
		auditSvc:    services.Audit,
		services:    services,
		root:        root,
	}

	s.registerTools()
	return s, nil
}

type GenerateArgs struct {
	LearningGoal     string `json:"learning_goal" jsonschema:"description=Free-text description of what the learner wants to achieve"`
	CurrentLevel     string `json:"current_level" jsonschema:"description=Learner skill level (beginner, intermediate, advanced)"`
	TimeCommitment   string `json:"time_commitment" jsonschema:"description=Weekly hour bucket (1-5, 5-10, 10-20, 20+)"`
	PreferredFormats string `json:"preferred_formats" jsonschema:"description=Comma-separated content formats (videos, books, articles, interactive, podcasts)"`
	Domain           string `json:"domain" jsonschema:"description=AI domain to study (e.g. Machine Learning, Deep Learning)"`
	SpecificTopics   string `json:"specific_topics,omitempty" jsonschema:"description=Free-text interests used to augment the curriculum"`
}

type TransitionTopicArgs struct {
	TopicID string `json:"topic_id" jsonschema:"description=The id of the topic to transition"`
	Event   string `json:"event" jsonschema:"description=Transition event (start, complete, stop, skip, reopen)"`
}

type ExportArgs struct {
	Format string `json:"format,omitempty" jsonschema:"description=Export format (markdown, text, json); defaults to markdown"`
}

func (s *Server) registerTools() {
	s.mcpServer.Tool("flowmap_generate").
		Description("Generate a personalized learning roadmap from a learner profile and set it as the workspace's current roadmap").
		Handler(s.handleGenerate)

	s.mcpServer.Tool("flowmap_get_roadmap").
		Description("Retrieve the workspace's current roadmap with its timeline and resources").
		Handler(s.handleGetRoadmap)

	s.mcpServer.Tool("flowmap_get_progress").
		Description("Retrieve topic completion state for the current roadmap").
		Handler(s.handleGetProgress)

	s.mcpServer.Tool("flowmap_transition_topic").
		Description("Transition a topic's completion state (e.g. start, complete, skip)").
		Handler(s.handleTransitionTopic)

	s.mcpServer.Tool("flowmap_list_domains").
		Description("List the curriculum domains and skill levels available in the template catalog").
		Handler(s.handleListDomains)

	s.mcpServer.Tool("flowmap_export").
		Description("Export the current roadmap as a markdown, text, or JSON document").
		Handler(s.handleExport)

	s.mcpServer.Tool("flowmap_share").
		Description("Get the shareable link for the current roadmap").
		Handler(s.handleShare)

	s.mcpServer.Tool("flowmap_audit_verify").
		Description("Verify the integrity of the workspace's hash-chained audit trail").
		Handler(s.handleAuditVerify)
}

func (s *Server) handleGenerate(ctx context.Context, args GenerateArgs) (any, error) {
	var formats []profile.Format
	for _, f := range strings.Split(args.PreferredFormats, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, profile.Format(f))
		}
	}

	rm, err := s.services.Generator().Generate(ctx, profile.UserProfile{
		LearningGoal:     args.LearningGoal,
		CurrentLevel:     profile.SkillLevel(args.CurrentLevel),
		TimeCommitment:   profile.TimeCommitment(args.TimeCommitment),
		PreferredFormats: formats,
		Domain:           args.Domain,
		SpecificTopics:   args.SpecificTopics,
	})
	if err != nil {
		return nil, mcpErr("Failed to generate roadmap. Check the workspace is initialized with 'flowmap init'.")
	}
	return rm, nil
}

func (s *Server) handleGetRoadmap(ctx context.Context, args struct{}) (any, error) {
	rm, err := s.services.Generator().GetRoadmap()
	if err != nil {
		return nil, mcpErr("Failed to load roadmap. Generate one first with flowmap_generate.")
	}
	return rm, nil
}

func (s *Server) handleGetProgress(ctx context.Context, args struct{}) (any, error) {
	state, err := s.progressSvc.GetProgress()
	if err != nil {
		return nil, mcpErr("Failed to load progress. Generate a roadmap first with flowmap_generate.")
	}
	return state, nil
}

func (s *Server) handleTransitionTopic(ctx context.Context, args TransitionTopicArgs) (string, error) {
	status, err := s.progressSvc.Transition(args.TopicID, args.Event)
	if err != nil {
		return "", mcpErr(fmt.Sprintf("Failed to transition topic '%s' with event '%s'. Ensure the topic exists and the transition is valid.", args.TopicID, args.Event))
	}
	return fmt.Sprintf("Topic %s is now %s", args.TopicID, status), nil
}

func (s *Server) handleListDomains(ctx context.Context, args struct{}) (any, error) {
	type domainInfo struct {
		Name   string   `json:"name"`
		Levels []string `json:"levels"`
	}
	templates := s.services.Templates()
	var out []domainInfo
	for _, name := range templates.Domains() {
		info := domainInfo{Name: name}
		for _, l := range templates.Levels(name) {
			info.Levels = append(info.Levels, l.String())
		}
		out = append(out, info)
	}
	return out, nil
}

func (s *Server) handleExport(ctx context.Context, args ExportArgs) (string, error) {
	format := application.ExportFormat(args.Format)
	if args.Format == "" {
		format = application.ExportMarkdown
	}
	doc, err := s.exportSvc.Export(format)
	if err != nil {
		return "", mcpErr("Failed to export roadmap. Generate one first with flowmap_generate.")
	}
	return doc, nil
}

func (s *Server) handleShare(ctx context.Context, args struct{}) (string, error) {
	link, err := s.shareSvc.Link()
	if err != nil {
		return "", mcpErr("Failed to build share link. Generate a roadmap first with flowmap_generate.")
	}
	return link, nil
}

func (s *Server) handleAuditVerify(ctx context.Context, args struct{}) (any, error) {
	violations, err := s.auditSvc.VerifyIntegrity()
	if err != nil {
		return nil, mcpErr("Failed to verify the audit trail.")
	}
	if len(violations) == 0 {
		return "Audit trail intact.", nil
	}
	return violations, nil
}

func (s *Server) Start() error {
	return s.StartStdio()
}

func (s *Server) StartStdio() error {
	return s.ServeStdio(context.Background())
}

func (s *Server) StartHTTP(addr string) error {
	return s.ServeHTTP(context.Background(), addr)
}

func (s *Server) ServeStdio(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}

func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	return mcp.ServeHTTP(ctx, s.mcpServer, addr, mcp.WithDefaultCORS())
}
