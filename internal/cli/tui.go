package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tagflow/pkg/flow"
	"github.com/matzehuels/tagflow/pkg/layout"
	"github.com/matzehuels/tagflow/pkg/measure"
	"github.com/matzehuels/tagflow/pkg/render/sink"
	"github.com/matzehuels/tagflow/pkg/tags"
)

var (
	previewStatusStyle = lipgloss.NewStyle().Foreground(colorLabel)
	previewErrorStyle  = lipgloss.NewStyle().Foreground(colorFail)
	previewHelpStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// =============================================================================
// PreviewModel - Interactive flow layout preview
// =============================================================================

// PreviewModel is the bubbletea model for the interactive terminal preview.
// Tags are measured in cells and repacked on every change.
type PreviewModel struct {
	Set      *tags.Set
	Measurer measure.Measurer
	Config   flow.Layout
	Width    float64
	Border   bool
	Color    bool

	// pinned is set once the width is changed by hand; the terminal width is
	// then no longer followed.
	pinned bool
	layout layout.Layout
	err    error
}

// NewPreviewModel creates a preview model and computes the initial layout.
// A zero width follows the terminal width.
func NewPreviewModel(set *tags.Set, m measure.Measurer, cfg flow.Layout, width float64) PreviewModel {
	model := PreviewModel{
		Set:      set,
		Measurer: m,
		Config:   cfg,
		Width:    width,
		pinned:   width > 0,
	}
	if model.Width <= 0 {
		model.Width = 80
	}
	model.relayout()
	return model
}

// Layout returns the current layout.
func (m PreviewModel) Layout() layout.Layout { return m.layout }

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.Width = max(1, m.Width-1)
			m.pinned = true
		case "right", "l":
			m.Width++
			m.pinned = true
		case "a":
			m.Config.Alignment = m.Config.Alignment.Next()
		case "+", "=":
			m.Config.HorizontalSpacing++
		case "-", "_":
			m.Config.HorizontalSpacing = max(0, m.Config.HorizontalSpacing-1)
		case "]":
			m.Config.VerticalSpacing++
		case "[":
			m.Config.VerticalSpacing = max(0, m.Config.VerticalSpacing-1)
		case "b":
			m.Border = !m.Border
			if cells, ok := m.Measurer.(measure.Cells); ok {
				cells.Border = m.Border
				m.Measurer = cells
			}
		default:
			return m, nil
		}
		m.relayout()
	case tea.WindowSizeMsg:
		if !m.pinned && msg.Width > 0 {
			m.Width = float64(msg.Width)
			m.relayout()
		}
	}
	return m, nil
}

func (m *PreviewModel) relayout() {
	m.layout, m.err = layout.Build(m.Set, m.Measurer, m.Config, m.Width)
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tag Preview"))
	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render("←/→ width  a align  +/- hspacing  [/] vspacing  b border  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(previewErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	var opts []sink.TextOption
	if m.Border {
		opts = append(opts, sink.WithBorder())
	}
	if m.Color {
		opts = append(opts, sink.WithColor())
	}
	b.WriteString(sink.RenderText(m.layout, opts...))
	b.WriteString("\n")
	b.WriteString(previewStatusStyle.Render(m.status()))

	return b.String()
}

func (m PreviewModel) status() string {
	return fmt.Sprintf("width %g · %s · spacing %g/%g · %s",
		m.Width,
		m.Config.Alignment,
		m.Config.HorizontalSpacing,
		m.Config.VerticalSpacing,
		plural(len(m.layout.Rows), "row"),
	)
}
