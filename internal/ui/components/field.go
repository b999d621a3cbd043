package components

import (
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/registrame/registrame/internal/ui/theme"
)

// TextField is a labelled single-line input backed by bubbles/textinput.
type TextField struct {
	Label    string
	Required bool
	Model    textinput.Model
}

// NewTextField creates an unfocused text field.
func NewTextField(label, placeholder string, required bool) TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 200
	return TextField{
		Label:    label,
		Required: required,
		Model:    ti,
	}
}

// Focus focuses the underlying input.
func (f *TextField) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes focus from the underlying input.
func (f *TextField) Blur() {
	f.Model.Blur()
}

// SetValue replaces the current input value.
func (f *TextField) SetValue(v string) {
	f.Model.SetValue(v)
}

// Value returns the current input value.
func (f TextField) Value() string {
	return f.Model.Value()
}

// Update forwards messages to the input.
func (f TextField) Update(msg tea.Msg) (TextField, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the label and the input on one line of the given width.
func (f TextField) View(width int) string {
	f.Model.SetWidth(max(width-LabelWidth-1, 1))
	return fieldLabel(f.Label, f.Required, f.Model.Focused()) + f.Model.View()
}

// AreaField is a labelled multi-line input backed by bubbles/textarea.
type AreaField struct {
	Label string
	Model textarea.Model
}

// NewAreaField creates an unfocused text area with the given visible rows.
func NewAreaField(label, placeholder string, rows int) AreaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(rows)
	return AreaField{
		Label: label,
		Model: ta,
	}
}

// Focus focuses the underlying text area.
func (a *AreaField) Focus() tea.Cmd {
	return a.Model.Focus()
}

// Blur removes focus from the underlying text area.
func (a *AreaField) Blur() {
	a.Model.Blur()
}

// SetValue replaces the current text.
func (a *AreaField) SetValue(v string) {
	a.Model.SetValue(v)
}

// Value returns the current text.
func (a AreaField) Value() string {
	return a.Model.Value()
}

// Update forwards messages to the text area.
func (a AreaField) Update(msg tea.Msg) (AreaField, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the label on its own line followed by the text area.
func (a AreaField) View(width int) string {
	a.Model.SetWidth(max(width-2, 1))
	return fieldLabel(a.Label, false, a.Model.Focused()) + "\n" +
		lipgloss.NewStyle().PaddingLeft(2).Render(a.Model.View())
}

// LabelWidth is the column reserved for field labels, including the focus
// marker and the required asterisk.
const LabelWidth = 16

func fieldLabel(label string, required, focused bool) string {
	marker := "  "
	style := theme.Subtitle
	if focused {
		marker = "▸ "
		style = theme.Label
	}
	text := marker + label
	if required {
		text += " *"
	}
	return style.Width(LabelWidth).Render(text)
}
