package dashboard

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
)

func TestHelpBindings_BrowseMode(t *testing.T) {
	// Given: browse mode
	km := HelpBindings(ModeBrowse, false)

	// Then: it returns the browse key map with the numbers toggle
	bk, ok := km.(browseKeys)
	if !ok {
		t.Fatalf("HelpBindings(ModeBrowse) = %T, want browseKeys", km)
	}
	if got := bk.Numbers.Help().Desc; got != "numbers" {
		t.Errorf("Numbers desc = %q, want %q", got, "numbers")
	}
}

func TestHelpBindings_NumbersModeOffersDetail(t *testing.T) {
	km := HelpBindings(ModeNumbers, false)

	bk, ok := km.(browseKeys)
	if !ok {
		t.Fatalf("HelpBindings(ModeNumbers) = %T, want browseKeys", km)
	}
	if got := bk.Numbers.Help().Desc; got != "detail" {
		t.Errorf("Numbers desc = %q, want %q", got, "detail")
	}
}

func TestHelpBindings_AddModeSaveFollowsCompleteness(t *testing.T) {
	tests := []struct {
		name    string
		canSave bool
	}{
		{name: "incomplete", canSave: false},
		{name: "complete", canSave: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km, ok := HelpBindings(ModeAdd, tt.canSave).(formKeys)
			if !ok {
				t.Fatal("HelpBindings(ModeAdd) should return formKeys")
			}
			if got := km.Save.Enabled(); got != tt.canSave {
				t.Errorf("Save.Enabled() = %v, want %v", got, tt.canSave)
			}
		})
	}
}

func TestHelpBindings_ImplementsKeyMap(t *testing.T) {
	for _, mode := range []Mode{ModeBrowse, ModeNumbers, ModeAdd} {
		var km help.KeyMap = HelpBindings(mode, true)
		if len(km.ShortHelp()) == 0 {
			t.Errorf("mode %d: ShortHelp() is empty", mode)
		}
		if len(km.FullHelp()) == 0 {
			t.Errorf("mode %d: FullHelp() is empty", mode)
		}
	}
}

func TestHelpBindings_DisabledSaveHiddenFromHelpBar(t *testing.T) {
	// Given: the form help with save disabled
	h := help.New()
	h.Width = 200

	// When: rendered
	out := stripANSI(h.View(HelpBindings(ModeAdd, false)))

	// Then: save is omitted while cancel remains
	if containsText(out, "save") {
		t.Errorf("help bar should hide save, got %q", out)
	}
	if !containsText(out, "cancel") {
		t.Errorf("help bar should show cancel, got %q", out)
	}
}
