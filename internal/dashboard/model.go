package dashboard

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/rolodex/internal/contact"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// paneTitleHeight is the number of lines used by each pane's title.
const paneTitleHeight = 1

// Model is the root Bubble Tea model for the contact list TUI.
// It renders the store's state and forwards user intents back into it.
type Model struct {
	mode         Mode
	focus        Focus
	width        int
	height       int
	store        *contact.Store
	watch        *watcher
	browse       browseState
	form         formState
	selected     *contact.Contact
	sampleOnInit bool
	viewport     viewport.Model
	help         help.Model
	logger       *slog.Logger
}

// ModelOption configures optional Model dependencies.
type ModelOption func(*Model)

// WithLogger sets the logger for user intents.
func WithLogger(l *slog.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// WithSampleOnInit controls whether Init generates sample contacts.
func WithSampleOnInit(enabled bool) ModelOption {
	return func(m *Model) {
		m.sampleOnInit = enabled
	}
}

// NewModel creates a dashboard Model in browse mode with left-pane focus,
// subscribed to store.
func NewModel(store *contact.Store, opts ...ModelOption) Model {
	m := Model{
		mode:         ModeBrowse,
		focus:        PaneLeft,
		store:        store,
		watch:        newWatcher(store),
		browse:       newBrowseState(),
		form:         newFormState(),
		sampleOnInit: true,
		viewport:     viewport.New(0, 0),
		help:         help.New(),
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.browse = m.browse.setContacts(store.Contacts())
	return m.withPaneContent()
}

// Close unsubscribes the model from its store.
func (m Model) Close() {
	m.watch.cancel()
}

// Init returns the initial command: one sample generation when enabled.
func (m Model) Init() tea.Cmd {
	if !m.sampleOnInit {
		return nil
	}
	return func() tea.Msg { return GenerateMsg{} }
}

// Update handles incoming messages with mode-based routing, then
// re-reads the store if any mutation was observed.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	return m.sync(), cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		_, rightWidth := PaneWidths(msg.Width)
		m.viewport.Width = max(rightWidth-borderChrome, 0)
		m.viewport.Height = max(m.contentHeight()-paneTitleHeight, 1)
		return m.withPaneContent(), nil

	case GenerateMsg:
		m.store.Generate()
		return m, nil

	case SelectContactMsg:
		// A select queued before a delete must not pin a removed contact,
		// and one queued before 'a' must not close the form.
		if m.mode == ModeAdd || m.store.Index(msg.Contact.ID) < 0 {
			return m, nil
		}
		c := msg.Contact
		m.selected = &c
		m.mode = ModeBrowse
		return m.withPaneContent(), nil

	case DeleteContactsMsg:
		positions := resolvePositions(m.store, msg.IDs)
		n := deletePositions(m.store, positions)
		m.logger.Info("delete batch", "requested", len(msg.IDs), "removed", n)
		return m, nil

	case SaveContactMsg:
		// Only the first of several queued saves finds the form open.
		if m.mode != ModeAdd {
			return m, nil
		}
		c := msg.Draft.Contact()
		m.store.Add(c)
		m.logger.Info("form saved", "id", c.ID, "name", c.FullName)
		return m.closeForm(), nil

	case CancelFormMsg:
		if m.mode != ModeAdd {
			return m, nil
		}
		m.logger.Info("form cancelled")
		return m.closeForm(), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input-internal messages.
	if m.mode == ModeAdd {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes key messages with global and mode-specific routing.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.mode == ModeAdd {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		if m.focus == PaneLeft {
			m.focus = PaneRight
		} else {
			m.focus = PaneLeft
		}
		return m, nil
	case "n":
		if m.mode == ModeNumbers {
			m.mode = ModeBrowse
		} else {
			m.mode = ModeNumbers
		}
		m = m.withPaneContent()
		m.viewport.GotoTop()
		return m, nil
	case "a":
		return m.openForm()
	case "g":
		return m, func() tea.Msg { return GenerateMsg{} }
	}

	if m.focus == PaneRight {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.browse, cmd = m.browse.Update(msg)
	return m, cmd
}

// openForm switches to the add form with empty fields.
func (m Model) openForm() (Model, tea.Cmd) {
	m.mode = ModeAdd
	var cmd tea.Cmd
	m.form, cmd = newFormState().focusCurrent()
	return m, cmd
}

// closeForm returns to browse mode and discards the form's values.
func (m Model) closeForm() Model {
	m.mode = ModeBrowse
	m.focus = PaneLeft
	m.form = newFormState()
	return m.withPaneContent()
}

// sync refreshes the snapshot after a store notification. The cursor stays
// on its contact when that contact survives, and a selected contact that no
// longer exists is cleared from the detail pane.
func (m Model) sync() Model {
	if !m.watch.take() {
		return m
	}
	m.logger.Debug("store changed", "kind", m.watch.last.Kind, "index", m.watch.last.Index, "count", m.watch.last.Count)
	cursorID := m.browse.SelectedID()
	m.browse = m.browse.setContacts(m.store.Contacts()).follow(cursorID)
	if m.selected != nil && m.store.Index(m.selected.ID) < 0 {
		m.selected = nil
	}
	return m.withPaneContent()
}

// withPaneContent re-renders the right pane's viewport content.
func (m Model) withPaneContent() Model {
	if m.mode == ModeNumbers {
		m.viewport.SetContent(viewNumbers(m.browse.contacts))
	} else {
		m.viewport.SetContent(viewDetail(m.selected))
	}
	return m
}

// contentHeight returns the usable height for pane content,
// accounting for border chrome and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the two-pane layout, or the add form, with the help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	contentHeight := m.contentHeight()
	helpView := m.help.View(HelpBindings(m.mode, m.form.canSave()))

	if m.mode == ModeAdd {
		form := FocusedBorder().
			Width(m.width - borderChrome).
			Height(contentHeight).
			Render(m.form.View())
		return lipgloss.JoinVertical(lipgloss.Left, form, helpView)
	}

	leftWidth, rightWidth := PaneWidths(m.width)

	var leftStyle, rightStyle lipgloss.Style
	if m.focus == PaneLeft {
		leftStyle = FocusedBorder()
		rightStyle = UnfocusedBorder()
	} else {
		leftStyle = UnfocusedBorder()
		rightStyle = FocusedBorder()
	}

	leftStyle = leftStyle.
		Width(leftWidth - borderChrome).
		Height(contentHeight)
	rightStyle = rightStyle.
		Width(rightWidth - borderChrome).
		Height(contentHeight)

	leftPane := leftStyle.Render(m.viewLeft(leftWidth-borderChrome, contentHeight-paneTitleHeight))
	rightPane := rightStyle.Render(m.viewRight())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	return lipgloss.JoinVertical(lipgloss.Left, panes, helpView)
}

// viewLeft renders the contact list under its title.
func (m Model) viewLeft(width, height int) string {
	title := paneTitleStyle.Render(fmt.Sprintf("Contacts (%d)", len(m.browse.contacts)))
	return title + "\n" + m.browse.View(width, height)
}

// viewRight renders the right pane title and viewport based on mode.
func (m Model) viewRight() string {
	title := "Detail"
	if m.mode == ModeNumbers {
		title = "Numbers"
	}
	return paneTitleStyle.Render(title) + "\n" + m.viewport.View()
}
