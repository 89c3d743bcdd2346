// Package args parses single-dash command-line arguments against a declared
// set of allowed names.
//
// Every allowed argument has a one-letter short name and an optional long
// name, and both are written with a single dash: -p and -path name the same
// argument. Arguments that take a value consume the next token.
package args

import (
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/consolekit/pkg/errors"
)

// Arg is an argument found on the command line.
type Arg struct {
	ShortName   rune
	LongName    string
	Value       string
	Description string
}

// HasValue reports whether the argument carried a non-empty value.
func (a Arg) HasValue() bool {
	return a.Value != ""
}

// Name returns the argument's short name as a string.
func (a Arg) Name() string {
	return string(a.ShortName)
}

// Info is the result of parsing a command line.
type Info struct {
	allowed   []AllowedArg
	arguments []Arg
}

// Parse matches input against allowed. Argument order is preserved and the
// same argument may appear more than once. Parsing fails when a name is not
// allowed, a value has no preceding name, more arguments are given than are
// allowed, or a required argument is missing.
func Parse(input []string, allowed []AllowedArg) (*Info, error) {
	if input == nil {
		return nil, apperrors.NewMissingArgumentError("input", "")
	}
	for _, a := range allowed {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}

	info := &Info{allowed: append([]AllowedArg(nil), allowed...)}

	var pending *AllowedArg
	for _, token := range input {
		if isName(token) {
			a, err := info.lookup(strings.TrimPrefix(token, namePrefix))
			if err != nil {
				return nil, err
			}
			// a name without a value never takes the next token
			pending = nil
			if a.HasValue {
				pending = &a
				continue
			}
			info.arguments = append(info.arguments, newArg(a, ""))
			continue
		}

		if pending == nil {
			return nil, apperrors.NewArgError(fmt.Sprintf("Argument value: '%s' has no corresponding name.", token))
		}
		info.arguments = append(info.arguments, newArg(*pending, token))
		pending = nil
	}

	if len(info.arguments) > len(info.allowed) {
		names := make([]string, len(info.arguments))
		for i, a := range info.arguments {
			names[i] = a.Name()
		}
		return nil, apperrors.NewArgError(fmt.Sprintf("Allowed arguments %d but %d provided (%s).",
			len(info.allowed), len(info.arguments), strings.Join(names, ", ")))
	}

	if err := info.checkRequired(); err != nil {
		return nil, err
	}
	return info, nil
}

func isName(token string) bool {
	return strings.HasPrefix(token, namePrefix)
}

func newArg(a AllowedArg, value string) Arg {
	return Arg{
		ShortName:   a.ShortName,
		LongName:    a.LongName,
		Value:       value,
		Description: a.Description,
	}
}

func (i *Info) lookup(name string) (AllowedArg, error) {
	for _, a := range i.allowed {
		if a.matches(name) {
			return a, nil
		}
	}
	return AllowedArg{}, apperrors.NewArgError(fmt.Sprintf("Argument name: '%s' is not allowed.", name))
}

func (i *Info) checkRequired() error {
	var problems []string
	for _, a := range i.allowed {
		if !a.Required {
			continue
		}
		if _, ok := i.find(a.ShortName); !ok {
			problems = append(problems, fmt.Sprintf("Argument '%c' is required and not supplied.", a.ShortName))
		}
	}
	if len(problems) > 0 {
		return apperrors.NewArgError(problems...)
	}
	return nil
}

func (i *Info) find(short rune) (Arg, bool) {
	for _, a := range i.arguments {
		if a.ShortName == short {
			return a, true
		}
	}
	return Arg{}, false
}

// Arguments returns the parsed arguments in command-line order.
func (i *Info) Arguments() []Arg {
	return append([]Arg(nil), i.arguments...)
}

// HasArguments reports whether anything was parsed.
func (i *Info) HasArguments() bool {
	return len(i.arguments) > 0
}

// Get returns the first argument matching a short or long name.
func (i *Info) Get(name string) (Arg, bool) {
	for _, a := range i.arguments {
		if a.Name() == name || (a.LongName != "" && a.LongName == name) {
			return a, true
		}
	}
	return Arg{}, false
}

// HelpText describes the allowed arguments.
func (i *Info) HelpText() string {
	return HelpText(i.allowed)
}
