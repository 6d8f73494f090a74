package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// field describes one input of a [form].
type field struct {
	label       string
	placeholder string
	secret      bool
	value       string
}

// form is a vertical stack of text inputs with one focused at a time.
type form struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(title string, fields ...field) *form {
	f := &form{title: title}
	for _, fd := range fields {
		in := textinput.New()
		in.Placeholder = fd.placeholder
		in.Prompt = "> "
		in.CharLimit = 128
		in.SetValue(fd.value)
		if fd.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		f.labels = append(f.labels, fd.label)
		f.inputs = append(f.inputs, in)
	}
	f.setFocus(0)
	return f
}

func (f *form) setFocus(i int) tea.Cmd {
	n := len(f.inputs)
	if n == 0 {
		return nil
	}
	f.focus = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focus {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

// Update moves focus on next/prev and forwards everything else to the focused input.
func (f *form) Update(msg tea.KeyMsg, keys keyMap) tea.Cmd {
	switch {
	case key.Matches(msg, keys.next):
		return f.setFocus(f.focus + 1)
	case key.Matches(msg, keys.prev):
		return f.setFocus(f.focus - 1)
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// Value returns the trimmed value of input i. Secret inputs are not trimmed.
func (f *form) Value(i int) string {
	in := f.inputs[i]
	if in.EchoMode == textinput.EchoPassword {
		return in.Value()
	}
	return strings.TrimSpace(in.Value())
}

func (f *form) View() string {
	var b strings.Builder
	b.WriteString(styles.title.Render(f.title))
	b.WriteString("\n")
	for i, in := range f.inputs {
		b.WriteString(styles.label.Render(f.labels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	return b.String()
}
