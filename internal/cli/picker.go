package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/printgrid/pkg/layout"
	"github.com/matzehuels/printgrid/pkg/templates"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// TemplateListModel - Interactive template selection
// =============================================================================

// TemplateListModel is the bubbletea model for interactive template
// selection.
type TemplateListModel struct {
	Templates []layout.Template
	Cursor    int
	Selected  *layout.Template
	Height    int
	Offset    int
}

// NewTemplateListModel creates a new template list model.
func NewTemplateListModel(ts []layout.Template) TemplateListModel {
	return TemplateListModel{
		Templates: ts,
		Height:    15,
	}
}

func (m TemplateListModel) Init() tea.Cmd {
	return nil
}

func (m TemplateListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Templates)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			t := m.Templates[m.Cursor]
			m.Selected = &t
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TemplateListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Template"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Templates) {
		end = len(m.Templates)
	}

	for i := m.Offset; i < end; i++ {
		t := m.Templates[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		shape := fmt.Sprintf("%dx%d", t.Grid.Cols, t.Grid.Rows)
		if t.IsCustom() {
			shape = fmt.Sprintf("%s · %d cells", shape, len(t.Cells))
		}

		b.WriteString(cursor + style.Render(t.ID) + "  " + listDimStyle.Render(shape))
		b.WriteString("\n")
	}

	return b.String()
}

// templatesPickCommand creates the "templates pick" subcommand.
func (c *CLI) templatesPickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Pick a template interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := c.newRegistry(cmd.Context())
			if err != nil {
				return err
			}
			defer registry.Close()

			ts := append(templates.Presets(), registry.List()...)
			model := NewTemplateListModel(ts)

			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return fmt.Errorf("run picker: %w", err)
			}

			result := final.(TemplateListModel)
			if result.Selected == nil {
				printInfo("No template selected")
				return nil
			}

			printSuccess("Selected %s", result.Selected.ID)
			printNextStep("Use it", fmt.Sprintf("%s render ./photos -t %s", appName, result.Selected.ID))
			return nil
		},
	}
}
