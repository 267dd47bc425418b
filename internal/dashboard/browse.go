package dashboard

import (
	"maps"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/smileynet/rolodex/internal/contact"
)

// CursorMarker is the prefix shown on the cursor row.
const CursorMarker = "▸ "

// markMarker prefixes rows marked for deletion.
const markMarker = "✗ "

// emptyListText is shown when the store holds no contacts.
const emptyListText = "No contacts. Press a to add or g to generate."

// browseState manages the contact snapshot, cursor, and deletion marks
// for the left pane.
type browseState struct {
	contacts []contact.Contact
	cursor   int
	marked   map[uuid.UUID]bool
}

func newBrowseState() browseState {
	return browseState{}
}

// setContacts replaces the snapshot after a store change. Marks are
// cleared and the cursor is clamped into range.
func (bs browseState) setContacts(contacts []contact.Contact) browseState {
	bs.contacts = contacts
	bs.marked = nil
	if bs.cursor >= len(bs.contacts) {
		bs.cursor = len(bs.contacts) - 1
	}
	if bs.cursor < 0 {
		bs.cursor = 0
	}
	return bs
}

// follow moves the cursor to the contact with id, if it is still listed.
func (bs browseState) follow(id uuid.UUID) browseState {
	if id == uuid.Nil {
		return bs
	}
	for i, c := range bs.contacts {
		if c.ID == id {
			bs.cursor = i
			break
		}
	}
	return bs
}

// Update processes messages for the browse state.
func (bs browseState) Update(msg tea.Msg) (browseState, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return bs.handleKey(msg)
	}
	return bs, nil
}

func (bs browseState) handleKey(msg tea.KeyMsg) (browseState, tea.Cmd) {
	if len(bs.contacts) == 0 {
		return bs, nil
	}

	switch msg.String() {
	case "up", "k":
		bs.cursor--
		if bs.cursor < 0 {
			bs.cursor = len(bs.contacts) - 1
		}
		return bs, nil

	case "down", "j":
		bs.cursor++
		if bs.cursor >= len(bs.contacts) {
			bs.cursor = 0
		}
		return bs, nil

	case "enter":
		selected := bs.contacts[bs.cursor]
		return bs, func() tea.Msg {
			return SelectContactMsg{Contact: selected}
		}

	case " ", "space":
		id := bs.contacts[bs.cursor].ID
		marked := maps.Clone(bs.marked)
		if marked == nil {
			marked = make(map[uuid.UUID]bool)
		}
		if marked[id] {
			delete(marked, id)
		} else {
			marked[id] = true
		}
		bs.marked = marked
		return bs, nil

	case "d", "delete":
		ids := bs.deletionIDs()
		return bs, func() tea.Msg {
			return DeleteContactsMsg{IDs: ids}
		}
	}

	return bs, nil
}

// deletionIDs returns the marked contacts in list order, or the cursor
// contact when nothing is marked.
func (bs browseState) deletionIDs() []uuid.UUID {
	if len(bs.marked) == 0 {
		return []uuid.UUID{bs.contacts[bs.cursor].ID}
	}
	var ids []uuid.UUID
	for _, c := range bs.contacts {
		if bs.marked[c.ID] {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// SelectedID returns the contact ID at the cursor, or uuid.Nil when the
// list is empty.
func (bs browseState) SelectedID() uuid.UUID {
	if len(bs.contacts) == 0 || bs.cursor < 0 || bs.cursor >= len(bs.contacts) {
		return uuid.Nil
	}
	return bs.contacts[bs.cursor].ID
}

// View renders at most height rows, scrolled so the cursor stays visible.
// Names too long for width are truncated with an ellipsis.
func (bs browseState) View(width, height int) string {
	if len(bs.contacts) == 0 {
		return mutedText.Render(emptyListText)
	}
	if height < 1 {
		height = 1
	}

	start := 0
	if bs.cursor >= height {
		start = bs.cursor - height + 1
	}
	end := min(start+height, len(bs.contacts))

	var b strings.Builder
	for i := start; i < end; i++ {
		c := bs.contacts[i]
		if i > start {
			b.WriteByte('\n')
		}
		if i == bs.cursor {
			b.WriteString(CursorMarker)
		} else {
			b.WriteString("  ")
		}
		nameWidth := max(width-lipgloss.Width(CursorMarker), 1)
		if bs.marked[c.ID] {
			b.WriteString(markedStyle.Render(ansi.Truncate(markMarker+c.FullName, nameWidth, "…")))
		} else {
			b.WriteString(ansi.Truncate(c.FullName, nameWidth, "…"))
		}
	}
	return b.String()
}
