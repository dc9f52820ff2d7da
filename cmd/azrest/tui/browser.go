// Package tui implements the interactive collection browser.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

const pageTimeout = 30 * time.Second

// Item is one row of the browser.
type Item struct {
	Name     string
	Type     string
	Location string
	State    string
}

// LoadFunc fetches the next page and reports whether more pages remain.
type LoadFunc func(ctx context.Context) (items []Item, more bool, err error)

// pageMsg carries the result of one LoadFunc call.
type pageMsg struct {
	items []Item
	more  bool
	err   error
}

// Browser is a bubbletea model showing a paged collection as a table.
// Pages are loaded on demand with the n key.
type Browser struct {
	title   string
	load    LoadFunc
	table   table.Model
	items   []Item
	pages   int
	more    bool
	loading bool
	err     error
}

// NewBrowser creates a browser that fetches pages with load.
func NewBrowser(title string, load LoadFunc) Browser {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 28},
			{Title: "Type", Width: 40},
			{Title: "Location", Width: 14},
			{Title: "State", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	return Browser{
		title:   title,
		load:    load,
		table:   t,
		more:    true,
		loading: true,
	}
}

// Init loads the first page.
func (m Browser) Init() tea.Cmd {
	return m.fetch()
}

func (m Browser) fetch() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pageTimeout)
		defer cancel()
		items, more, err := load(ctx)
		return pageMsg{items: items, more: more, err: err}
	}
}

// Update handles key presses and loaded pages.
func (m Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n":
			if m.loading || !m.more {
				return m, nil
			}
			m.loading = true
			return m, m.fetch()
		}

	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width - 4)
		if h := msg.Height - 8; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case pageMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.pages++
		m.more = msg.more
		m.items = append(m.items, msg.items...)
		m.table.SetRows(rows(m.items))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with a status line.
func (m Browser) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString("\n")
	sb.WriteString(panelStyle.Render(m.table.View()))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(m.status()))
	if m.err != nil {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render("error: " + m.err.Error()))
	}
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(m.help()))
	return sb.String()
}

func (m Browser) status() string {
	switch {
	case m.loading:
		return fmt.Sprintf("%d items, loading page %d...", len(m.items), m.pages+1)
	case m.more:
		return fmt.Sprintf("%d items in %d pages, more available", len(m.items), m.pages)
	default:
		return fmt.Sprintf("%d items in %d pages, end of collection", len(m.items), m.pages)
	}
}

func (m Browser) help() string {
	if m.more && !m.loading {
		return "↑/↓ move • n next page • q quit"
	}
	return "↑/↓ move • q quit"
}

// Items returns the rows loaded so far.
func (m Browser) Items() []Item {
	return m.items
}

func rows(items []Item) []table.Row {
	out := make([]table.Row, 0, len(items))
	for _, it := range items {
		out = append(out, table.Row{it.Name, it.Type, it.Location, it.State})
	}
	return out
}
