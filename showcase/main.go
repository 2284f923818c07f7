// Command showcase drives a pooled score list over an in-memory scene
// graph, one populate per animation tick, and visualizes which slots
// are live and which are recycled.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-roster/roster/pkg/list"
	"github.com/go-roster/roster/pkg/pool"
	"github.com/go-roster/roster/pkg/scene"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	recycledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
	statStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	eventStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

type tickMsg time.Time

type model struct {
	graph  *scene.MemoryGraph
	scores *list.List[score]
	frame  int
	events []string
	err    error
}

func newModel() *model {
	graph := scene.NewMemoryGraph()
	root := graph.NewRoot("scoreboard")
	scores := list.New[score](pool.New(graph, root, scoreRowPrefab))

	m := &model{graph: graph, scores: scores}
	scores.OnInstantiated(func(i int, _ *pool.Slot) {
		m.logEvent(fmt.Sprintf("instantiated slot %d", i))
	})
	scores.OnRemoved(func(i int, _ *pool.Slot) {
		m.logEvent(fmt.Sprintf("recycled slot %d", i))
	})
	return m
}

func (m *model) logEvent(s string) {
	m.events = append(m.events, s)
	if len(m.events) > 5 {
		m.events = m.events[len(m.events)-5:]
	}
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(700*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tickMsg:
		m.frame++
		if err := m.scores.Populate(rollScores(m.frame)); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) View() string {
	var b []byte
	b = append(b, titleStyle.Render("roster showcase: pooled score list")...)
	b = append(b, '\n', '\n')

	for i := 0; i < m.scores.Capacity(); i++ {
		slot := m.scores.SlotAt(i)
		row := slot.Instance().(*scoreRow)
		line := fmt.Sprintf("slot %d  %s  (bound %d times)", i, row.label, row.binds)
		if slot.Active() {
			b = append(b, activeStyle.Render("  ● "+line)...)
		} else {
			b = append(b, recycledStyle.Render("  ○ "+line+"  [recycled]")...)
		}
		b = append(b, '\n')
	}

	b = append(b, '\n')
	stats := fmt.Sprintf("frame %d   count %d   capacity %d   created %d   destroyed %d",
		m.frame, m.scores.Count(), m.scores.Capacity(), m.graph.Created(), m.graph.Destroyed())
	b = append(b, statStyle.Render(stats)...)
	b = append(b, '\n', '\n')

	for _, ev := range m.events {
		b = append(b, eventStyle.Render("  "+ev)...)
		b = append(b, '\n')
	}
	b = append(b, '\n')
	b = append(b, recycledStyle.Render("press q to quit")...)
	b = append(b, '\n')
	return string(b)
}

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
		os.Exit(1)
	}
}
