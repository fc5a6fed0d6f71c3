package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	cursorEmpty    = "  "
	cursorSelected = "> "
)

// SettingItem represents one command's setting for the list.
type SettingItem struct {
	Command  string
	Kind     string
	Scope    string
	Value    string
	Help     string
	Included bool
}

// FilterValue implements list.Item.
func (i SettingItem) FilterValue() string {
	return i.Command + " " + i.Help
}

// SettingDelegate renders setting items with theme styling.
type SettingDelegate struct {
	Theme    *Theme
	ShowHelp bool
}

// NewSettingDelegate creates a themed setting list delegate.
func NewSettingDelegate(theme *Theme, showHelp bool) SettingDelegate {
	return SettingDelegate{
		Theme:    theme,
		ShowHelp: showHelp,
	}
}

// Height returns the height of each item.
func (d SettingDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d SettingDelegate) Spacing() int {
	return 0
}

// Update handles item-level events.
func (d SettingDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders a single list item.
func (d SettingDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	si, ok := item.(SettingItem)
	if !ok {
		return
	}

	t := d.Theme
	isSelected := index == m.Index()
	const (
		maxValueLength = 40
		maxHelpLength  = 60
		ellipsisLength = 3
	)

	kindBadge := t.MutedBadge(si.Kind)
	includedMark := " "
	if si.Included {
		includedMark = t.SuccessStyle.Render("*")
	}

	cursor := cursorEmpty
	if isSelected {
		cursor = cursorSelected
	}

	titleStyle := t.ListItemTitle
	valueStyle := t.ListItemDesc
	if isSelected {
		titleStyle = titleStyle.Foreground(t.Accent).Bold(true)
		valueStyle = valueStyle.Foreground(t.Text)
	}

	line1 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		includedMark,
		" ",
		titleStyle.Render(si.Command),
		" ",
		kindBadge,
	)

	value := si.Value
	if len(value) > maxValueLength {
		value = value[:maxValueLength-ellipsisLength] + "..."
	}
	second := valueStyle.Render(value)
	if d.ShowHelp && si.Help != "" {
		help := si.Help
		if len(help) > maxHelpLength {
			help = help[:maxHelpLength-ellipsisLength] + "..."
		}
		second = lipgloss.JoinHorizontal(lipgloss.Left, second, "  ", t.Subtle.Render(help))
	}

	line2 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		strings.Repeat(" ", 4),
		second,
	)

	_, _ = fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// NewSettingList creates a themed list for setting items.
func NewSettingList(theme *Theme, items []SettingItem, showHelp bool, width, height int) list.Model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	delegate := NewSettingDelegate(theme, showHelp)

	l := list.New(listItems, delegate, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)

	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)

	return l
}
