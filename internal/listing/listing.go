// Package listing renders the contact list without a terminal UI, for
// piping and scripting.
package listing

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/smileynet/rolodex/internal/contact"
)

// Format selects the listing encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// Writer renders contacts in a fixed Format.
type Writer struct {
	w      io.Writer
	format Format
}

// NewWriter returns a Writer for w. An unknown format is rejected.
func NewWriter(w io.Writer, format Format) (*Writer, error) {
	switch format {
	case FormatText, FormatYAML:
	default:
		return nil, fmt.Errorf("listing: unknown format %q", format)
	}
	return &Writer{w: w, format: format}, nil
}

// Write renders contacts in store order.
func (lw *Writer) Write(contacts []contact.Contact) error {
	if lw.format == FormatYAML {
		return lw.writeYAML(contacts)
	}
	return lw.writeText(contacts)
}

func (lw *Writer) writeText(contacts []contact.Contact) error {
	if len(contacts) == 0 {
		_, err := fmt.Fprintln(lw.w, "No contacts")
		return err
	}
	for i, c := range contacts {
		if _, err := fmt.Fprintf(lw.w, "%2d. %s\n    email: %s\n    phone: %s\n", i+1, c.FullName, c.Email, c.Phone); err != nil {
			return fmt.Errorf("listing: writing: %w", err)
		}
	}
	return nil
}

type document struct {
	Contacts []contact.Contact `yaml:"contacts"`
}

func (lw *Writer) writeYAML(contacts []contact.Contact) error {
	enc := yaml.NewEncoder(lw.w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Contacts: contacts}); err != nil {
		return fmt.Errorf("listing: encoding yaml: %w", err)
	}
	return enc.Close()
}

// IsTerminal reports whether w is connected to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
