package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/roomatch/roomatch-cli/internal/client/validate"
)

// authForm is the shared state of the login and sign-up screens: a fixed
// set of text inputs keyed by field name plus the current per-field error
// messages. A field's error is dropped the moment its value changes; the
// full map is replaced on submit.
type authForm struct {
	fields []string
	inputs map[string]*textinput.Model
	errors map[string]string
	focus  int
}

func newField(placeholder string, password bool) *textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 128
	in.Width = 40
	if password {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return &in
}

func newLoginForm() authForm {
	f := authForm{
		fields: []string{validate.FieldEmail, validate.FieldPassword},
		inputs: map[string]*textinput.Model{
			validate.FieldEmail:    newField("you@example.com", false),
			validate.FieldPassword: newField("Your password", true),
		},
		errors: map[string]string{},
	}
	f.inputs[f.fields[0]].Focus()
	return f
}

func newSignUpForm() authForm {
	f := authForm{
		fields: []string{validate.FieldName, validate.FieldEmail, validate.FieldPhone, validate.FieldPassword},
		inputs: map[string]*textinput.Model{
			validate.FieldName:     newField("John", false),
			validate.FieldEmail:    newField("you@example.com", false),
			validate.FieldPhone:    newField("03XXXXXXXXX", false),
			validate.FieldPassword: newField("Your password", true),
		},
		errors: map[string]string{},
	}
	f.inputs[f.fields[0]].Focus()
	return f
}

func (f *authForm) value(field string) string {
	return f.inputs[field].Value()
}

func (f *authForm) setError(field, msg string) {
	f.errors[field] = msg
}

// cycleFocus moves input focus by delta, wrapping around.
func (f *authForm) cycleFocus(delta int) {
	f.inputs[f.fields[f.focus]].Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.inputs[f.fields[f.focus]].Focus()
}

// update routes a message to the focused input and clears that field's
// error when the keystroke changed the value.
func (f *authForm) update(msg tea.Msg) tea.Cmd {
	field := f.fields[f.focus]
	in := f.inputs[field]

	before := in.Value()
	updated, cmd := in.Update(msg)
	*in = updated

	if updated.Value() != before {
		delete(f.errors, field)
	}
	return cmd
}
