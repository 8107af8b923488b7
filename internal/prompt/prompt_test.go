package prompt

import (
	"testing"

	tbl "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func typeText(m tea.Model, text string) tea.Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestTextinputValue(t *testing.T) {
	var m tea.Model = newTextinput("name?", "brave-otter", "")
	require.Equal(t, "brave-otter", m.(textinput).value())

	m = typeText(m, " ada ")
	require.Equal(t, "ada", m.(textinput).value())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, m.(textinput).done)
	require.NoError(t, m.(textinput).err)
	require.Empty(t, m.View())
}

func TestTextinputLimitsLength(t *testing.T) {
	var m tea.Model = newTextinput("name?", "", "")
	m = typeText(m, "abcdefghijklmnop")
	require.Equal(t, "abcdefghi", m.(textinput).value())
}

func TestTextinputCancel(t *testing.T) {
	var m tea.Model = newTextinput("name?", "", "")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.True(t, m.(textinput).done)
	require.EqualError(t, m.(textinput).err, "cancelled by user")
}

func TestLevelTableSearch(t *testing.T) {
	m := newTable([]tbl.Column{{Title: "Level", Width: 6}, {Title: "Gravity", Width: 10}}, levelRows(), 0)
	require.Len(t, m.table.Rows(), 30)
	require.Equal(t, "480ms", m.table.Rows()[0][1])

	typeText(m, "12")
	require.Equal(t, 11, m.table.Cursor())

	typeText(m, "3")
	require.Equal(t, 2, m.table.Cursor())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, "3", m.choice)
	require.Empty(t, m.View())
}

func TestLevelTableEscape(t *testing.T) {
	m := newTable([]tbl.Column{{Title: "Level", Width: 6}, {Title: "Gravity", Width: 10}}, levelRows(), 4)
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, m.quitting)
	require.Empty(t, m.choice)
}
