package dashboard

import (
	"fmt"
	"strings"

	"github.com/smileynet/rolodex/internal/contact"
)

// viewDetail renders one contact read-only. A nil contact renders a hint.
func viewDetail(c *contact.Contact) string {
	if c == nil {
		return mutedText.Render("Select a contact with enter")
	}
	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(c.FullName))
	fmt.Fprintf(&b, "\n\nEmail: %s\nPhone: %s", c.Email, c.Phone)
	return b.String()
}

// viewNumbers renders every contact as a directory section in list order.
func viewNumbers(contacts []contact.Contact) string {
	if len(contacts) == 0 {
		return mutedText.Render("No contacts")
	}
	var b strings.Builder
	for i, c := range contacts {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(sectionHeaderStyle.Render(c.FullName))
		fmt.Fprintf(&b, "\n  Email: %s\n  Phone: %s", c.Email, c.Phone)
	}
	return b.String()
}
