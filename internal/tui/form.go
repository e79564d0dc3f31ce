// internal/tui/form.go
//
// Modal input forms: the terminal counterpart of the desktop input dialogs.
// A form owns a stack of text inputs; enter on the last field submits the
// collected values through a callback, esc abandons the action.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fieldSpec declares one form input.
type fieldSpec struct {
	label       string
	placeholder string
	initial     string
}

// submitFunc receives the entered values in field order and returns a status
// line for the footer. A returned error keeps the form open.
type submitFunc func(values []string) (string, error)

type form struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	errMsg string
	submit submitFunc
}

func newForm(title string, submit submitFunc, fields ...fieldSpec) *form {
	f := &form{
		title:  title,
		submit: submit,
	}
	for i, spec := range fields {
		input := textinput.New()
		input.Placeholder = spec.placeholder
		input.SetValue(spec.initial)
		input.CharLimit = 64
		input.Width = 32
		if i == 0 {
			input.Focus()
		}
		f.labels = append(f.labels, spec.label)
		f.inputs = append(f.inputs, input)
	}
	return f
}

// Update processes one message. done is true when the form submitted
// successfully or was cancelled; status carries the footer line on success.
func (f *form) Update(msg tea.Msg) (done bool, status string, cmd tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return true, "", nil
		case "enter":
			if f.focus < len(f.inputs)-1 {
				f.setFocus(f.focus + 1)
				return false, "", nil
			}
			result, err := f.submit(f.values())
			if err != nil {
				f.errMsg = err.Error()
				return false, "", nil
			}
			return true, result, nil
		case "tab", "down":
			f.setFocus((f.focus + 1) % len(f.inputs))
			return false, "", nil
		case "shift+tab", "up":
			f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
			return false, "", nil
		}
	}
	var inputCmd tea.Cmd
	f.inputs[f.focus], inputCmd = f.inputs[f.focus].Update(msg)
	return false, "", inputCmd
}

func (f *form) setFocus(idx int) {
	f.inputs[f.focus].Blur()
	f.focus = idx
	f.inputs[f.focus].Focus()
}

func (f *form) values() []string {
	out := make([]string, len(f.inputs))
	for i := range f.inputs {
		out[i] = strings.TrimSpace(f.inputs[i].Value())
	}
	return out
}

func (f *form) View() string {
	rows := []string{panelTitleStyle.Render(f.title)}
	for i := range f.inputs {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			formLabelStyle.Render(f.labels[i]),
			f.inputs[i].View(),
		))
	}
	if f.errMsg != "" {
		rows = append(rows, errorStyle.Render(f.errMsg))
	}
	rows = append(rows, hintStyle.Render("Enter → next/confirm    Esc → cancel"))
	return panelStyle.Render(strings.Join(rows, "\n"))
}
