// Package tkrerrors has errors that carry a message meant for the person at
// the console in addition to the usual technical one.
package tkrerrors

import "fmt"

// inputError is an error caused by input that could not be understood or that
// asks for something that is not possible.
//
// inputError includes a human-readable message to show to the user as well as
// a typical more technical "error message" style message.
type inputError struct {
	msg   string
	human string
	wrap  error
}

func (e *inputError) Error() string {
	return e.msg
}

// HumanMessage returns the message that should be shown to the user to
// describe the error.
func (e *inputError) HumanMessage() string {
	return e.human
}

// Unwrap gives the error that the inputError wraps, if it wraps one.
func (e *inputError) Unwrap() error {
	return e.wrap
}

// Input returns a new error that has both the message to show the user and the
// technical description of the error. If technical is empty, one is generated
// from human.
func Input(human, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("input error: %s", human)
	}
	return &inputError{
		msg:   technical,
		human: human,
	}
}

// Inputf returns a new error that has a message to show to the user and an
// automatically generated Error() description.
func Inputf(humanFormat string, a ...interface{}) error {
	return Input(fmt.Sprintf(humanFormat, a...), "")
}

// WrapInput returns a new error that has both the message to show the user and
// the technical description of the error, and that wraps e.
func WrapInput(e error, human, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("input error: %s: %s", human, e)
	}
	return &inputError{
		msg:   technical,
		human: human,
		wrap:  e,
	}
}

// WrapInputf is WrapInput with a generated technical message and a formatted
// human message.
func WrapInputf(e error, humanFormat string, a ...interface{}) error {
	return WrapInput(e, fmt.Sprintf(humanFormat, a...), "")
}

// HumanMessage gets the message to display to the console for the given error.
// If err was created by this package, its human message is returned.
// Otherwise, err.Error() is returned.
func HumanMessage(err error) string {
	if inErr, ok := err.(*inputError); ok {
		return inErr.HumanMessage()
	}
	return err.Error()
}
