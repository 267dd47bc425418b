package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolodex/internal/contact"
)

// formField indexes the add form's inputs in tab order.
type formField int

const (
	fieldFirstName formField = iota
	fieldLastName
	fieldEmail
	fieldPhone
	fieldCount
)

var fieldLabels = [fieldCount]string{"First Name", "Last Name", "Email", "Phone"}

// formState holds the add form's inputs and which one has focus.
// Save is only accepted while every input is non-empty.
type formState struct {
	inputs [fieldCount]textinput.Model
	focus  formField
}

// newFormState returns an empty form with no input focused. Call focusCurrent
// to start the cursor.
func newFormState() formState {
	var fs formState
	for i := range fs.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldLabels[i]
		ti.Prompt = ""
		ti.CharLimit = 0 // unlimited; only emptiness is validated
		fs.inputs[i] = ti
	}
	return fs
}

// focusCurrent focuses the current input and returns its blink command.
func (fs formState) focusCurrent() (formState, tea.Cmd) {
	cmd := fs.inputs[fs.focus].Focus()
	return fs, cmd
}

// draft returns the raw field values.
func (fs formState) draft() contact.Draft {
	return contact.Draft{
		FirstName: fs.inputs[fieldFirstName].Value(),
		LastName:  fs.inputs[fieldLastName].Value(),
		Email:     fs.inputs[fieldEmail].Value(),
		Phone:     fs.inputs[fieldPhone].Value(),
	}
}

// canSave reports whether the save action is enabled.
func (fs formState) canSave() bool {
	return fs.draft().Complete()
}

// Update processes messages for the form.
func (fs formState) Update(msg tea.Msg) (formState, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return fs, func() tea.Msg { return CancelFormMsg{} }
		case "ctrl+s":
			return fs.save()
		case "enter":
			if fs.focus == fieldCount-1 {
				return fs.save()
			}
			return fs.move(1)
		case "tab", "down":
			return fs.move(1)
		case "shift+tab", "up":
			return fs.move(-1)
		}
	}

	var cmd tea.Cmd
	fs.inputs[fs.focus], cmd = fs.inputs[fs.focus].Update(msg)
	return fs, cmd
}

// save emits a SaveContactMsg, or nothing while any field is empty.
func (fs formState) save() (formState, tea.Cmd) {
	if !fs.canSave() {
		return fs, nil
	}
	d := fs.draft()
	return fs, func() tea.Msg { return SaveContactMsg{Draft: d} }
}

// move shifts focus by delta, wrapping at both ends.
func (fs formState) move(delta int) (formState, tea.Cmd) {
	fs.inputs[fs.focus].Blur()
	fs.focus = formField((int(fs.focus) + delta + int(fieldCount)) % int(fieldCount))
	return fs.focusCurrent()
}

// View renders the form body.
func (fs formState) View() string {
	var b strings.Builder

	b.WriteString(paneTitleStyle.Render("Add Contact"))
	b.WriteString("\n\n")
	b.WriteString(detailTitleStyle.Render("Personal Information"))
	b.WriteByte('\n')
	fs.viewField(&b, fieldFirstName)
	fs.viewField(&b, fieldLastName)
	b.WriteByte('\n')
	b.WriteString(detailTitleStyle.Render("Contact Details"))
	b.WriteByte('\n')
	fs.viewField(&b, fieldEmail)
	fs.viewField(&b, fieldPhone)

	save := "[ctrl+s] Save"
	if !fs.canSave() {
		save = mutedText.Render(save)
	}
	fmt.Fprintf(&b, "\n  %s   [esc] Cancel", save)
	if !fs.canSave() {
		b.WriteString("\n\n  " + mutedText.Render("All fields are required"))
	}
	return b.String()
}

func (fs formState) viewField(b *strings.Builder, f formField) {
	label := fmt.Sprintf("%-11s", fieldLabels[f])
	if f == fs.focus {
		label = focusedLabelStyle.Render(label)
	}
	fmt.Fprintf(b, "  %s %s\n", label, fs.inputs[f].View())
}
