package dashboard

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// HelpBindings returns the help.KeyMap for the given mode,
// providing context-aware help bar content. canSave disables the
// form's save binding, which hides it from the help bar.
func HelpBindings(mode Mode, canSave bool) help.KeyMap {
	switch mode {
	case ModeAdd:
		km := FormKeyMap()
		km.Save.SetEnabled(canSave)
		return km
	case ModeNumbers:
		km := BrowseKeyMap()
		km.Numbers = key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "detail"),
		)
		return km
	default:
		return BrowseKeyMap()
	}
}
