package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// pagedLoader serves pages in order and records how often it was called.
type pagedLoader struct {
	pages [][]Item
	calls int
}

func (p *pagedLoader) load(ctx context.Context) ([]Item, bool, error) {
	page := p.pages[p.calls]
	p.calls++
	return page, p.calls < len(p.pages), nil
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// step applies msg and runs the returned command, if any, feeding its
// message back into the model.
func step(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, bool) {
	t.Helper()
	m, cmd := m.Update(msg)
	if cmd == nil {
		return m, false
	}
	m, _ = m.Update(cmd())
	return m, true
}

func TestBrowser_Paging(t *testing.T) {
	loader := &pagedLoader{pages: [][]Item{
		{{Name: "cache1", Type: "Microsoft.Cache/redisEnterprise"}, {Name: "cache2"}},
		{{Name: "cache3", State: "Running"}},
	}}

	var m tea.Model = NewBrowser("redisEnterprise", loader.load)
	m, _ = m.Update(m.Init()())

	b := m.(Browser)
	if got := len(b.Items()); got != 2 {
		t.Fatalf("after first page: %d items, want 2", got)
	}
	if !strings.Contains(b.View(), "more available") {
		t.Errorf("expected more-available status, got:\n%s", b.View())
	}

	m, ran := step(t, m, keyMsg("n"))
	if !ran {
		t.Fatal("n did not load the next page")
	}
	b = m.(Browser)
	if got := len(b.Items()); got != 3 {
		t.Fatalf("after second page: %d items, want 3", got)
	}
	if !strings.Contains(b.View(), "end of collection") {
		t.Errorf("expected end-of-collection status, got:\n%s", b.View())
	}

	if _, ran := step(t, m, keyMsg("n")); ran {
		t.Error("n loaded past the last page")
	}
	if loader.calls != 2 {
		t.Errorf("loader called %d times, want 2", loader.calls)
	}
}

func TestBrowser_IgnoresNextWhileLoading(t *testing.T) {
	m := NewBrowser("x", func(ctx context.Context) ([]Item, bool, error) { return nil, true, nil })

	_, cmd := m.Update(keyMsg("n"))
	if cmd != nil {
		t.Error("expected no command while the first page is loading")
	}
}

func TestBrowser_Error(t *testing.T) {
	m := NewBrowser("x", nil)

	updated, _ := m.Update(pageMsg{err: errors.New("boom")})
	view := updated.View()
	if !strings.Contains(view, "error: boom") {
		t.Errorf("expected error in view, got:\n%s", view)
	}

	// A failed page can be retried.
	b := updated.(Browser)
	b.load = func(ctx context.Context) ([]Item, bool, error) { return []Item{{Name: "a"}}, false, nil }
	if _, ran := step(t, b, keyMsg("n")); !ran {
		t.Error("expected retry after an error")
	}
}

func TestBrowser_Quit(t *testing.T) {
	m := NewBrowser("x", nil)

	for _, key := range []tea.KeyMsg{keyMsg("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", key)
		}
	}
}
