package prompt

import (
	"os"
	"strconv"
	"strings"

	tbl "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chiselstrike/blockfall/internal/tetris"
	"golang.org/x/term"
)

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

type table struct {
	table     tbl.Model
	quitting  bool
	choice    string
	searchBuf string
}

func (m *table) Init() tea.Cmd {
	return nil
}

func (m *table) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.quitting = true
			if row := m.table.SelectedRow(); row != nil {
				m.choice = row[0]
			}
			return m, tea.Quit
		default:
			if len(msg.String()) == 1 {
				m.search(msg.String())
				return m, nil
			}
			m.searchBuf = ""
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// search moves the cursor to the first row starting with the typed prefix
func (m *table) search(key string) {
	m.searchBuf += key
	searchIdx := -1
	searchIdxCandidate := -1
	for id, row := range m.table.Rows() {
		if strings.HasPrefix(row[0], m.searchBuf) {
			searchIdx = id
			break
		}
		if searchIdxCandidate == -1 && strings.HasPrefix(row[0], key) {
			searchIdxCandidate = id
		}
	}
	if searchIdx != -1 {
		m.table.SetCursor(searchIdx)
	} else if searchIdxCandidate != -1 {
		m.searchBuf = key
		m.table.SetCursor(searchIdxCandidate)
	}
}

func (m *table) View() string {
	if m.quitting {
		return ""
	}
	// 3 lines for the table header, and assume current output has been at most 7 lines
	m.table.SetHeight(min(len(m.table.Rows()), terminalHeight()-10))
	return baseStyle.Render(m.table.View()) + "\n"
}

func terminalHeight() int {
	_, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || height <= 10 {
		return 24
	}
	return height
}

func newTable(columns []tbl.Column, rows []tbl.Row, initPos int) *table {
	t := tbl.New(
		tbl.WithColumns(columns),
		tbl.WithRows(rows),
		tbl.WithFocused(true),
	)
	t.SetCursor(initPos)

	s := tbl.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return &table{table: t}
}

func (m *table) Start() error {
	m.quitting = false
	m.searchBuf = ""
	_, err := tea.NewProgram(m).Run()
	return err
}

func Table(columns []tbl.Column, rows []tbl.Row, initPos int) (string, error) {
	table := newTable(columns, rows, initPos)
	if err := table.Start(); err != nil {
		return "", err
	}
	return table.choice, nil
}

func levelRows() []tbl.Row {
	rows := make([]tbl.Row, 0, 30)
	for level := 1; level <= 30; level++ {
		rows = append(rows, tbl.Row{strconv.Itoa(level), tetris.TickTime(level).String()})
	}
	return rows
}

// Level lets the player pick a start level, returning 0 when cancelled
func Level(current int) (int, error) {
	columns := []tbl.Column{
		{Title: "Level", Width: 6},
		{Title: "Gravity", Width: 10},
	}
	choice, err := Table(columns, levelRows(), tetris.ClampLevel(current)-1)
	if err != nil || choice == "" {
		return 0, err
	}
	return strconv.Atoi(choice)
}
