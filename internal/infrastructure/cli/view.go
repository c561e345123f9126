package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/flowlabs/flowmap/pkg/domain/progress"
	"github.com/flowlabs/flowmap/pkg/storage"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Interactive timeline viewer for the current roadmap",
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("FLOWMAP_SKIP_VIEW_RUN") == "true" {
			return nil
		}
		root, err := getWorkspaceRoot()
		if err != nil {
			return err
		}
		p := tea.NewProgram(initialViewModel(root))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("view run failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(viewCmd)
}

// Styles
var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#2D7D9A")).
	PaddingLeft(1).
	PaddingRight(1)

var doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
var milestoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

type viewModel struct {
	table      table.Model
	title      string
	weeks      int
	months     int
	completion float64
	err        error
}

func initialViewModel(root string) viewModel {
	repo := storage.NewFilesystemRepository(root)

	rm, err := repo.LoadRoadmap()
	if err != nil {
		return viewModel{err: err}
	}

	state, err := repo.LoadProgress()
	if err != nil {
		if err != progress.ErrNoState {
			return viewModel{err: err}
		}
		state = progress.NewState(rm.ID, rm.Curriculum.TopicIDs())
	}

	columns := []table.Column{
		{Title: "Weeks", Width: 9},
		{Title: "Status", Width: 12},
		{Title: "Topic", Width: 38},
		{Title: "Phase", Width: 24},
		{Title: "Difficulty", Width: 12},
	}

	rows := []table.Row{}
	for _, e := range rm.Timeline {
		span := fmt.Sprintf("%d-%d", e.StartWeek, e.EndWeek)
		if e.StartWeek == e.EndWeek {
			span = fmt.Sprintf("%d", e.StartWeek)
		}
		if e.IsMilestone {
			rows = append(rows, table.Row{span, "milestone", e.Title, e.Phase, ""})
			continue
		}
		status := state.StatusOf(e.ID)
		rows = append(rows, table.Row{span, status.DisplayName(), e.Title, e.Phase, e.Difficulty.String()})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(14),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))

	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229"))

	t.SetStyles(s)

	return viewModel{
		table:      t,
		title:      rm.Title,
		weeks:      rm.EstimatedDuration.Weeks,
		months:     rm.EstimatedDuration.Months,
		completion: state.Completion(),
	}
}

func (m viewModel) Init() tea.Cmd { return nil }

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m viewModel) View() string {
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("Error loading roadmap: %v", m.err)) + "\nPress q to quit.\n"
	}

	header := headerStyle.Render(m.title)
	summary := fmt.Sprintf("Duration: %d weeks (%d months)", m.weeks, m.months)
	completion := doneStyle.Render(fmt.Sprintf("Completion: %.0f%%", m.completion*100))

	return baseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			summary,
			completion,
			"\nTimeline:",
			m.table.View(),
			"\n[q] Quit  [Up/Down] Navigate",
		),
	) + "\n"
}
