package state

import (
	"context"

	"github.com/MKhiriev/go-cols/internal/validators"
	"github.com/MKhiriev/go-cols/models"
)

// RegisterForm is the state of the registration screen.
type RegisterForm struct {
	Request models.RegisterRequest
	// Err is shown under the form: a local validation message or the
	// server's rejection as received.
	Err        string
	Submitting bool
	Done       bool
}

// RegisterAction is an input to [ReduceRegister].
type RegisterAction interface {
	registerAction()
}

// SetRegisterField replaces one field of the request. Field is one of the
// validators.Field* names, or validators.FieldNames with First set for the
// first name.
type SetRegisterField struct {
	Field string
	First bool
	Value string
}

// SubmitRegister validates the form and, when valid, asks for the request
// to be sent.
type SubmitRegister struct {
	Validator validators.Validator
}

// RegisterAnswered is the server's answer. Message is empty on success.
type RegisterAnswered struct {
	Message string
}

func (SetRegisterField) registerAction() {}
func (SubmitRegister) registerAction()   {}
func (RegisterAnswered) registerAction() {}

// SendRegistration asks to send Request to the server.
type SendRegistration struct {
	Request models.RegisterRequest
}

func (SendRegistration) command() {}

// ReduceRegister returns the next form state and the commands to run.
// Nothing is sent while the form is invalid or a submission is pending.
func ReduceRegister(f RegisterForm, action RegisterAction) (RegisterForm, []Command) {
	switch a := action.(type) {
	case SetRegisterField:
		switch a.Field {
		case validators.FieldEmail:
			f.Request.Email = a.Value
		case validators.FieldPassword:
			f.Request.Password = a.Value
		case validators.FieldConfirm:
			f.Request.Confirm = a.Value
		case validators.FieldPseudo:
			f.Request.Pseudo = a.Value
		case validators.FieldNames:
			if a.First {
				f.Request.FirstName = a.Value
			} else {
				f.Request.LastName = a.Value
			}
		}
		return f, nil

	case SubmitRegister:
		if f.Submitting {
			return f, nil
		}
		if err := a.Validator.Validate(context.Background(), f.Request); err != nil {
			f.Err = err.Error()
			return f, nil
		}
		f.Err = ""
		f.Submitting = true
		return f, []Command{SendRegistration{Request: f.Request}}

	case RegisterAnswered:
		f.Submitting = false
		f.Err = a.Message
		f.Done = a.Message == ""
		return f, nil
	}

	return f, nil
}
