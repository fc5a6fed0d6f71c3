// Package model contains the Bubble Tea models for interactive commands.
package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cfgsmith/cfgsmith/internal/cli/styles"
	"github.com/cfgsmith/cfgsmith/internal/state"
)

// browseMode tracks which input owns the keyboard.
type browseMode int

const (
	modeFilter browseMode = iota
	modeEdit
)

// BrowseModel is the Bubble Tea model for the interactive settings browser.
type BrowseModel struct {
	// UI components
	list   list.Model
	search textinput.Model
	value  textinput.Model
	help   help.Model
	keys   styles.BrowseKeyMap

	// State
	mode        browseMode
	searchQuery string
	status      string
	statusIsErr bool
	dirty       bool
	width       int
	height      int

	// Dependencies
	engine   *state.ConfigState
	theme    *styles.Theme
	showHelp bool
}

// NewBrowseModel creates a browser over the engine's setting table.
func NewBrowseModel(theme *styles.Theme, engine *state.ConfigState, showHelp bool) BrowseModel {
	search := styles.NewSearchInput(theme)
	search.Focus()

	m := BrowseModel{
		search:   search,
		value:    styles.NewValueInput(theme),
		help:     styles.NewStyledHelp(theme),
		keys:     styles.DefaultBrowseKeyMap(),
		engine:   engine,
		theme:    theme,
		showHelp: showHelp,
		width:    80,
		height:   24,
	}
	m.rebuildList()
	return m
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rebuildList()

	case tea.KeyMsg:
		if m.mode == modeEdit {
			return m.updateEdit(msg)
		}
		return m.updateFilter(msg)
	}

	return m, tea.Batch(cmds...)
}

// updateFilter handles keys while the filter input owns the keyboard.
func (m BrowseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Edit):
		if item, ok := m.selectedItem(); ok {
			m.mode = modeEdit
			m.status = ""
			m.value.SetValue(item.Value)
			m.value.CursorEnd()
			m.value.Focus()
			m.search.Blur()
		}

	case key.Matches(msg, m.keys.Toggle):
		if item, ok := m.selectedItem(); ok {
			m.engine.SetIncluded(item.Command, !item.Included, "browse")
			m.dirty = true
			m.refreshItems()
		}

	case key.Matches(msg, m.keys.Reset):
		if item, ok := m.selectedItem(); ok {
			if def, found := m.engine.Definition(item.Command); found {
				if err := m.engine.SetValue(item.Command, def.DefaultValue(), "browse"); err == nil {
					m.dirty = true
					m.setStatus(item.Command+" reset to default", false)
					m.refreshItems()
				}
			}
		}

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)

	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)

		if m.search.Value() != m.searchQuery {
			m.searchQuery = m.search.Value()
			m.rebuildList()
		}
	}

	return m, tea.Batch(cmds...)
}

// updateEdit handles keys while the value input owns the keyboard.
func (m BrowseModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.exitEdit()
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		item, ok := m.selectedItem()
		if !ok {
			m.exitEdit()
			return m, nil
		}
		if ok, errMsg := m.engine.TrySetValueFromString(item.Command, m.value.Value(), "browse"); !ok {
			m.setStatus(errMsg, true)
			return m, nil
		}
		m.engine.SetIncluded(item.Command, true, "browse")
		m.dirty = true
		m.setStatus(item.Command+" updated", false)
		m.exitEdit()
		m.refreshItems()
		return m, nil
	}

	var cmd tea.Cmd
	m.value, cmd = m.value.Update(msg)
	return m, cmd
}

func (m *BrowseModel) exitEdit() {
	m.mode = modeFilter
	m.value.Blur()
	m.search.Focus()
}

func (m *BrowseModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

// selectedItem returns the item under the cursor.
func (m *BrowseModel) selectedItem() (styles.SettingItem, bool) {
	item := m.list.SelectedItem()
	if item == nil {
		return styles.SettingItem{}, false
	}
	si, ok := item.(styles.SettingItem)
	return si, ok
}

// items converts the engine table to list items, applying the filter.
func (m *BrowseModel) items() []styles.SettingItem {
	views := m.engine.Settings()
	items := make([]styles.SettingItem, 0, len(views))
	for _, view := range views {
		if m.searchQuery != "" && !strings.Contains(view.Command, m.searchQuery) {
			continue
		}
		helper := ""
		if meta := view.Def.Type.Metadata(); meta != nil {
			helper = meta.HelperText
		}
		if helper == "" {
			helper = view.Def.Console.Description
		}
		items = append(items, styles.SettingItem{
			Command:  view.Command,
			Kind:     string(view.Kind),
			Scope:    string(view.Scope),
			Value:    view.Def.Type.FormatConfig(view.Value),
			Help:     helper,
			Included: view.Included,
		})
	}
	return items
}

// rebuildList recreates the list, resetting the cursor.
func (m *BrowseModel) rebuildList() {
	listHeight := m.height - 7
	if listHeight < 5 {
		listHeight = 5
	}
	m.list = styles.NewSettingList(m.theme, m.items(), m.showHelp, m.width, listHeight)
}

// refreshItems updates item content in place, keeping the cursor.
func (m *BrowseModel) refreshItems() {
	index := m.list.Index()
	items := m.items()
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}
	m.list.SetItems(listItems)
	if index < len(listItems) {
		m.list.Select(index)
	}
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	t := m.theme

	var input string
	if m.mode == modeEdit {
		input = t.InputBox(m.value.View(), true)
	} else {
		input = t.InputBox(m.search.View(), true)
	}

	statusLine := ""
	if m.status != "" {
		if m.statusIsErr {
			statusLine = t.ErrorStyle.Render(m.status)
		} else {
			statusLine = t.SuccessStyle.Render(m.status)
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		input,
		"",
		m.list.View(),
		statusLine,
		m.help.View(m.keys),
	)
}

// Dirty reports whether the session changed any setting.
func (m BrowseModel) Dirty() bool {
	return m.dirty
}

// Ensure interface compliance.
var _ tea.Model = (*BrowseModel)(nil)
