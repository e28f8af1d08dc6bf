package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/ryansmg/graphgen/pkg/errors"
	"github.com/ryansmg/graphgen/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ShapeListModel - Interactive shape selection
// =============================================================================

// ShapeListModel is the bubbletea model for interactive shape selection.
type ShapeListModel struct {
	Shapes   []pipeline.Shape
	Cursor   int
	Selected *pipeline.Shape
}

// NewShapeListModel creates a new shape list model.
func NewShapeListModel(shapes []pipeline.Shape) ShapeListModel {
	return ShapeListModel{Shapes: shapes}
}

func (m ShapeListModel) Init() tea.Cmd {
	return nil
}

func (m ShapeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Shapes)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Shapes) == 0 {
				return m, tea.Quit
			}
			s := m.Shapes[m.Cursor]
			m.Selected = &s
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ShapeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Shape"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, s := range m.Shapes {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-14s %s", cursor, s.Name, listDimStyle.Render(s.Summary))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(m.Shapes) > 0 {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("  params: " + strings.Join(m.Shapes[m.Cursor].Params, ", ")))
		b.WriteString("\n")
	}

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// isInteractive reports whether stdin and stdout are both terminals.
func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// pickShape runs the shape picker. It returns an INVALID_SHAPE error when
// the picker is closed without a choice.
func pickShape() (string, error) {
	final, err := tea.NewProgram(NewShapeListModel(pipeline.Shapes), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "shape picker")
	}
	m, ok := final.(ShapeListModel)
	if !ok || m.Selected == nil {
		return "", errors.New(errors.ErrCodeInvalidShape, "no shape selected")
	}
	return m.Selected.Name, nil
}
