package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/boxed/registry"
	"github.com/wippyai/boxed/track"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	reg     *registry.Table[payload]
	tracker *track.Tracker
	tbl     table.Model
	size    int
	status  string
	failed  bool
}

func newInteractiveModel(size int) *interactiveModel {
	reg := registry.New[payload]()
	tracker := track.NewTracker()
	reg.Subscribe(tracker)

	columns := []table.Column{
		{Title: "Handle", Width: 8},
		{Title: "ID", Width: 8},
		{Title: "Bytes", Width: 8},
		{Title: "Addr", Width: 16},
	}

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4"))

	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	tbl.SetStyles(s)

	return &interactiveModel{
		reg:     reg,
		tracker: tracker,
		tbl:     tbl,
		size:    size,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.reg.Close()
			return m, tea.Quit

		case "a":
			h, err := m.reg.Adopt(newPayload(m.size))
			if err != nil {
				m.fail(err)
				return m, nil
			}
			m.ok(fmt.Sprintf("created handle %d", h))
			m.refresh()
			return m, nil

		case "d":
			h, ok := m.selectedHandle()
			if !ok {
				return m, nil
			}
			if !m.reg.Drop(h) {
				m.fail(fmt.Errorf("handle %d is not live", h))
				return m, nil
			}
			m.ok(fmt.Sprintf("dropped handle %d (destructor ran)", h))
			m.refresh()
			return m, nil

		case "r":
			h, ok := m.selectedHandle()
			if !ok {
				return m, nil
			}
			p, ok := m.reg.Release(h)
			if !ok {
				m.fail(fmt.Errorf("handle %d is not live", h))
				return m, nil
			}
			// Ownership left the table; dispose manually.
			p.Drop()
			m.ok(fmt.Sprintf("released handle %d to caller", h))
			m.refresh()
			return m, nil

		case "c":
			m.reg.Clear()
			m.ok("cleared all live referents")
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	s := titleStyle.Render("boxwatch — live referents") + "\n\n"
	s += m.tbl.View() + "\n\n"

	st := m.tracker.Stats()
	s += statsStyle.Render(fmt.Sprintf(
		"live %d  created %d  dropped %d  released %d  peak %d  destructors %d",
		st.Live, st.Created, st.Dropped, st.Released, m.tracker.Peak(), destroyed.Load(),
	)) + "\n"

	if m.status != "" {
		if m.failed {
			s += errorStyle.Render(m.status) + "\n"
		} else {
			s += statusStyle.Render(m.status) + "\n"
		}
	}

	s += helpStyle.Render("a: allocate • d: drop • r: release • c: clear • q: quit")
	return s
}

func (m *interactiveModel) refresh() {
	rows := make([]table.Row, 0, m.reg.Len())
	m.reg.Each(func(h registry.Handle, p *payload) bool {
		rows = append(rows, table.Row{
			strconv.FormatUint(uint64(h), 10),
			strconv.Itoa(p.id),
			strconv.Itoa(len(p.data)),
			fmt.Sprintf("%p", p),
		})
		return true
	})
	m.tbl.SetRows(rows)
}

func (m *interactiveModel) selectedHandle() (registry.Handle, bool) {
	row := m.tbl.SelectedRow()
	if row == nil {
		return 0, false
	}
	h, err := strconv.ParseUint(row[0], 10, 32)
	if err != nil {
		return 0, false
	}
	return registry.Handle(h), true
}

func (m *interactiveModel) ok(msg string) {
	m.status = msg
	m.failed = false
}

func (m *interactiveModel) fail(err error) {
	m.status = err.Error()
	m.failed = true
}

func runInteractive(size int) error {
	p := tea.NewProgram(newInteractiveModel(size), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
