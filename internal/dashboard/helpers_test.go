package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolodex"
	"github.com/smileynet/rolodex/internal/contact"
)

// containsText is a test alias for strings.Contains.
func containsText(s, sub string) bool {
	return strings.Contains(s, sub)
}

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

// newTestStore returns an empty store with a fixed seed.
func newTestStore(t *testing.T) *contact.Store {
	t.Helper()
	pools, err := contact.LoadPools(rolodex.Samples)
	if err != nil {
		t.Fatalf("LoadPools() error = %v", err)
	}
	return contact.NewStore(pools, contact.WithRand(contact.NewSeededRand(1)))
}

// letteredStore returns a store holding contacts "A X" .. in order.
func letteredStore(t *testing.T, n int) *contact.Store {
	t.Helper()
	s := newTestStore(t)
	for i := range n {
		s.Add(contact.New(string(rune('A'+i)), "X", "e", "p"))
	}
	return s
}

// firstNames returns the first word of each full name in store order.
func firstNames(s *contact.Store) []string {
	var out []string
	for _, c := range s.Contacts() {
		first, _, _ := strings.Cut(c.FullName, " ")
		out = append(out, first)
	}
	return out
}

// sized returns a model that has received a window size.
func sized(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

// update applies msg and returns the concrete Model.
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// press sends a key and then feeds the resulting command's message, if any,
// back into the model, mirroring one round trip of the event loop.
func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(key)
	m = next.(Model)
	if cmd == nil {
		return m
	}
	msg := resolve(cmd)
	switch msg.(type) {
	case SelectContactMsg, DeleteContactsMsg, SaveContactMsg, CancelFormMsg, GenerateMsg:
		return update(t, m, msg)
	}
	return m
}

// resolve runs cmd and returns its message. Commands that block, such as a
// cursor blink tick, yield nil.
func resolve(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// typeText sends each rune of s as a key press.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, runeKey(r))
	}
	return m
}
