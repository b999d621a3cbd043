package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/registrame/registrame/internal/ui/theme"
)

// Option is a single choice in a Selector.
type Option struct {
	Value  string
	Label  string
	Detail string
}

// Selector picks one option from a list. Inline selectors cycle with
// left/right, list selectors move with up/down and show each option's detail.
type Selector struct {
	Label    string
	Options  []Option
	Selected int
	Inline   bool
	focused  bool
}

// NewSelector creates a selector with the first option selected.
func NewSelector(label string, options []Option, inline bool) Selector {
	return Selector{
		Label:   label,
		Options: options,
		Inline:  inline,
	}
}

// Focus marks the selector as focused.
func (s *Selector) Focus() { s.focused = true }

// Blur marks the selector as unfocused.
func (s *Selector) Blur() { s.focused = false }

// Focused reports whether the selector receives key input.
func (s Selector) Focused() bool { return s.focused }

// Value returns the value of the selected option, or "" when empty.
func (s Selector) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected].Value
}

// SetValue selects the option with the given value. Unknown values are ignored.
func (s *Selector) SetValue(v string) {
	for i, o := range s.Options {
		if o.Value == v {
			s.Selected = i
			return
		}
	}
}

// Update handles keyboard navigation while focused.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	if !s.focused || len(s.Options) == 0 {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	prev, next := "up", "down"
	if s.Inline {
		prev, next = "left", "right"
	}

	switch kmsg.String() {
	case prev:
		s.Selected = (s.Selected - 1 + len(s.Options)) % len(s.Options)
	case next:
		s.Selected = (s.Selected + 1) % len(s.Options)
	}
	return s, nil
}

// View renders the selector at the given width.
func (s Selector) View(width int) string {
	if s.Inline {
		return fieldLabel(s.Label, false, s.focused) + s.inlineView()
	}
	return fieldLabel(s.Label, false, s.focused) + "\n" + s.listView(width)
}

func (s Selector) inlineView() string {
	arrow := theme.Disabled
	if s.focused {
		arrow = lipgloss.NewStyle().Foreground(theme.Secondary)
	}
	current := ""
	if len(s.Options) > 0 {
		current = s.Options[s.Selected].Label
	}
	return arrow.Render("◂ ") + theme.Body.Render(current) + arrow.Render(" ▸")
}

func (s Selector) listView(width int) string {
	var b strings.Builder
	for i, o := range s.Options {
		cursor := "○ "
		style := theme.Unselected
		if i == s.Selected {
			cursor = "● "
			style = theme.Selected
		} else if !s.focused {
			style = theme.Disabled
		}
		b.WriteString("  " + style.Render(cursor+o.Label))
		if i == s.Selected && o.Detail != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				PaddingLeft(6).
				Width(width).
				Render(o.Detail))
		}
		if i < len(s.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
