// Package browsetui implements the interactive property-tree browser behind
// `gvasdiag browse`: a bubbletea Model with a tab per view.
package browsetui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mabhi256/gvasdiag/internal/gvas"
	"github.com/mabhi256/gvasdiag/internal/gvas/registry"
	"github.com/mabhi256/gvasdiag/utils"
)

// Tab identifies one of the browser's top-level views.
type Tab int

const (
	TreeTab Tab = iota
	StatsTab
	maxTab = StatsTab
)

// Model is the root bubbletea model for the save-file browser.
type Model struct {
	filename string
	header   *gvas.GvasHeader
	root     *gvas.Value
	stats    *registry.TypeStats

	currentTab Tab
	tree       treeModel
	statsView  statsModel

	width, height int
}

// New builds a browser Model over an already-decoded save file.
func New(filename string, header *gvas.GvasHeader, root *gvas.Value) *Model {
	stats := registry.NewTypeStats()
	stats.Collect(root)

	return &Model{
		filename:   filename,
		header:     header,
		root:       root,
		stats:      stats,
		currentTab: TreeTab,
		tree:       newTreeModel(root),
		statsView:  newStatsModel(stats),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.tree.setSize(msg.Width, msg.Height-4)
		m.statsView.setSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			if msg.String() == "tab" || !m.activeCapturesRight() {
				m.currentTab = utils.GetNextEnum(m.currentTab, maxTab)
				return m, nil
			}
		case "shift+tab", "left", "h":
			if msg.String() == "shift+tab" || !m.activeCapturesLeft() {
				m.currentTab = utils.GetPrevEnum(m.currentTab, maxTab)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.currentTab {
	case TreeTab:
		m.tree, cmd = m.tree.update(msg)
	case StatsTab:
		m.statsView, cmd = m.statsView.update(msg)
	}
	return m, cmd
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	switch m.currentTab {
	case TreeTab:
		body = m.tree.view()
	case StatsTab:
		body = m.statsView.view()
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderHelp())
}

// activeCapturesRight/activeCapturesLeft report whether the current tab's
// view wants a left/right keystroke for itself (e.g. list filter input),
// so those keys only fall through to tab-switching when it doesn't.
func (m *Model) activeCapturesRight() bool {
	if m.currentTab == TreeTab {
		return m.tree.capturesRight()
	}
	return m.statsView.capturesRight()
}

func (m *Model) activeCapturesLeft() bool {
	if m.currentTab == TreeTab {
		return m.tree.capturesLeft()
	}
	return m.statsView.capturesLeft()
}

func (m *Model) renderHeader() string {
	names := []string{"Tree", "Stats"}
	var rendered string
	for i, name := range names {
		style := utils.TabInactiveStyle
		if Tab(i) == m.currentTab {
			style = utils.TabActiveStyle
		}
		rendered += style.Render(name)
	}

	title := utils.TitleStyle.Render(m.filename)
	return lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", rendered)
}

func (m *Model) renderHelp() string {
	return utils.HelpBarStyle.Width(m.width).Render("tab: switch view · ↑/↓: navigate · enter: expand · q: quit")
}
