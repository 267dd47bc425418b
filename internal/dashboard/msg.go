// Package dashboard implements the two-pane contact list TUI: the list on
// the left, the selected contact or the numbers directory on the right, and
// a full-screen add form.
package dashboard

import (
	"github.com/google/uuid"

	"github.com/smileynet/rolodex/internal/contact"
)

// Mode represents the current dashboard view mode.
type Mode int

const (
	ModeBrowse  Mode = iota // Contact list with detail pane.
	ModeNumbers             // Contact list with numbers directory pane.
	ModeAdd                 // Add-contact form.
)

// Focus represents which pane has keyboard focus.
type Focus int

const (
	PaneLeft  Focus = iota // Left pane (contact list) has focus.
	PaneRight              // Right pane (detail or directory viewport) has focus.
)

// --- tea.Msg types ---

// GenerateMsg asks the model to append a batch of sample contacts.
// Init emits it once at startup; 'g' emits it on demand.
type GenerateMsg struct{}

// SelectContactMsg surfaces a contact in the detail pane.
type SelectContactMsg struct {
	Contact contact.Contact
}

// DeleteContactsMsg asks the model to remove contacts. IDs are resolved to
// positions when the message is applied, so batches never act on stale indices.
type DeleteContactsMsg struct {
	IDs []uuid.UUID
}

// SaveContactMsg carries a complete draft from the add form.
type SaveContactMsg struct {
	Draft contact.Draft
}

// CancelFormMsg signals the add form was dismissed without saving.
type CancelFormMsg struct{}
