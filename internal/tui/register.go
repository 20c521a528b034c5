package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-cols/internal/service"
	"github.com/MKhiriev/go-cols/internal/state"
	"github.com/MKhiriev/go-cols/internal/validators"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// registerField binds an input to the form field it fills.
type registerField struct {
	label string
	field string
	first bool
	input textinput.Model
}

// RegisterModel is the registration screen. The form is validated locally
// before anything is sent; a server rejection, such as a taken pseudo, is
// shown as received.
type RegisterModel struct {
	ctx       context.Context
	auth      service.ClientAuthService
	validator validators.Validator

	fields []registerField
	focus  int
	form   state.RegisterForm
}

// NewRegisterModel creates a [RegisterModel] with one input per form field,
// the email field focused. Both password inputs use masked echo.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	newInput := func(placeholder string, limit int, secret bool) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 40
		if secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		return in
	}

	fields := []registerField{
		{label: "Email", field: validators.FieldEmail, input: newInput("email", 254, false)},
		{label: "Pseudo", field: validators.FieldPseudo, input: newInput("pseudo", 32, false)},
		{label: "Prénom", field: validators.FieldNames, first: true, input: newInput("prénom", 64, false)},
		{label: "Nom", field: validators.FieldNames, input: newInput("nom", 64, false)},
		{label: "Mot de passe", field: validators.FieldPassword, input: newInput("au moins 6 caractères", 256, true)},
		{label: "Confirmation", field: validators.FieldConfirm, input: newInput("répéter le mot de passe", 256, true)},
	}
	fields[0].input.Focus()

	return &RegisterModel{
		ctx:       ctx,
		auth:      auth,
		validator: validators.NewDomainValidator(),
		fields:    fields,
	}
}

// Init implements [tea.Model]. Starts the cursor blink of the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - registerResult: ends the flow with a [LoginResult] on success,
//     otherwise shows the server message.
//   - esc: goes back to the menu.
//   - tab, down and shift+tab, up: move the focus.
//   - enter: validates the form and sends it.
//
// Other messages go to the focused input.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerResult); ok {
		m.form, _ = state.ReduceRegister(m.form, state.RegisterAnswered{Message: humanize(result.err)})
		if m.form.Done {
			profile := result.profile
			return m, func() tea.Msg { return LoginResult{Profile: profile} }
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.form.Err = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "down":
			m.moveFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil
		case "enter":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

// submit copies the inputs into the form and sends it when the reducer
// accepts it.
func (m *RegisterModel) submit() tea.Cmd {
	for _, f := range m.fields {
		value := f.input.Value()
		if f.field != validators.FieldPassword && f.field != validators.FieldConfirm {
			value = strings.TrimSpace(value)
		}
		m.form, _ = state.ReduceRegister(m.form, state.SetRegisterField{Field: f.field, First: f.first, Value: value})
	}

	var cmds []state.Command
	m.form, cmds = state.ReduceRegister(m.form, state.SubmitRegister{Validator: m.validator})
	for _, c := range cmds {
		if send, ok := c.(state.SendRegistration); ok {
			return m.cmdRegister(send)
		}
	}
	return nil
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	for _, f := range m.fields {
		b.WriteString(formRow(f.label, "["+f.input.View()+"]"))
	}

	if m.form.Submitting {
		b.WriteString("\n[Création...]\n")
	} else {
		b.WriteString("\n[Créer le compte]\n")
	}

	if m.form.Err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.form.Err))
		b.WriteString("\n")
	}

	return renderPage("INSCRIPTION", strings.TrimRight(b.String(), "\n"), "esc : retour │ tab : champ suivant │ enter : valider")
}

func (m *RegisterModel) cmdRegister(send state.SendRegistration) tea.Cmd {
	ctx, auth := m.ctx, m.auth

	return func() tea.Msg {
		profile, err := auth.Register(ctx, send.Request)
		return registerResult{profile: profile, err: err}
	}
}

func (m *RegisterModel) moveFocus(delta int) {
	m.fields[m.focus].input.Blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	m.fields[m.focus].input.Focus()
}
