package console

import (
	"errors"
	"fmt"
)

// Output holds the messages and errors produced by running a command.
type Output struct {
	messages []string
	errors   []error
}

// Print adds a message to the Output.
func (o *Output) Print(a ...any) {
	o.messages = append(o.messages, fmt.Sprint(a...))
}

// Printf adds a formatted message to the Output.
func (o *Output) Printf(format string, a ...any) {
	o.messages = append(o.messages, fmt.Sprintf(format, a...))
}

// Error adds an error to the Output.
func (o *Output) Error(a ...any) {
	o.errors = append(o.errors, errors.New(fmt.Sprint(a...)))
}

// Errorf adds a formatted error to the Output. Errors passed with %w remain
// accessible through errors.Is.
func (o *Output) Errorf(format string, a ...any) {
	o.errors = append(o.errors, fmt.Errorf(format, a...))
}

// Messages returns the messages added to the Output.
func (o *Output) Messages() []string {
	return o.messages
}

// Errors returns the errors added to the Output.
func (o *Output) Errors() []error {
	return o.errors
}
