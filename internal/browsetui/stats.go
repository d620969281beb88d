package browsetui

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mabhi256/gvasdiag/internal/gvas/registry"
	"github.com/mabhi256/gvasdiag/utils"
)

// statsModel renders the property-type histogram collected by
// registry.TypeStats as a bar chart, one bar per scalar kind.
type statsModel struct {
	chart barchart.Model
}

func newStatsModel(stats *registry.TypeStats) statsModel {
	chart := barchart.New(40, 12)
	loadStats(&chart, stats)
	return statsModel{chart: chart}
}

func loadStats(chart *barchart.Model, stats *registry.TypeStats) {
	kinds := stats.Kinds()
	bars := make([]barchart.BarData, 0, len(kinds))
	for _, kind := range kinds {
		bars = append(bars, barchart.BarData{
			Label: kind,
			Values: []barchart.BarValue{{
				Name:  kind,
				Value: float64(stats.Count(kind)),
				Style: lipgloss.NewStyle().Foreground(utils.InfoColor),
			}},
		})
	}
	chart.PushAll(bars)
	chart.Draw()
}

func (m *statsModel) setSize(width, height int) {
	if width < 20 {
		width = 20
	}
	if height < 8 {
		height = 8
	}
	m.chart.Resize(width, height)
	m.chart.Draw()
}

func (m statsModel) capturesRight() bool { return false }
func (m statsModel) capturesLeft() bool  { return false }

func (m statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	return m, nil
}

func (m statsModel) view() string {
	return m.chart.View()
}
