package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/slotforge/slotforge/pkg/padring"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// artifactListModel is the bubbletea model for browsing generated
// configuration files. Selecting an entry quits with Selected set.
type artifactListModel struct {
	Entries  []inspectEntry
	Cursor   int
	Selected *inspectEntry
	Height   int
	Offset   int
}

// newArtifactListModel creates a list model over the parsed entries.
func newArtifactListModel(entries []inspectEntry) artifactListModel {
	return artifactListModel{
		Entries: entries,
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m artifactListModel) Init() tea.Cmd {
	return nil
}

func (m artifactListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = &m.Entries[m.Cursor]
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

func (m artifactListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Generated Configurations"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]
		a := e.Art

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		total, signal, power := padSplit(a)
		die := fmt.Sprintf("%d×%d", a.DieArea.X2-a.DieArea.X1, a.DieArea.Y2-a.DieArea.Y1)
		split := fmt.Sprintf("%d/%d", signal, power)
		rows = append(rows, []string{cursor, e.Name, die, fmt.Sprintf("%d", total), split, edgeMask(a.Pads)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Configuration", "Die (µm)", "Pads", "Sig/Pwr", "Edges").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Entries) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col == 2 || col == 5 {
				if isCurrent {
					base = base.Foreground(colorGray)
				} else {
					base = base.Foreground(colorDim)
				}
			}

			if isCurrent {
				if col != 2 && col != 5 {
					return base.Foreground(colorCyan).Bold(true)
				}
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}

// edgeMask renders edge occupancy as a compass mask: "NESW" for a full
// ring, "N···" for a top-only one.
func edgeMask(pads map[padring.Edge][]padring.Pad) string {
	order := []padring.Edge{padring.North, padring.East, padring.South, padring.West}
	const letters = "NESW"

	var b strings.Builder
	for i, e := range order {
		if len(pads[e]) > 0 {
			b.WriteByte(letters[i])
		} else {
			b.WriteString("·")
		}
	}
	return b.String()
}
