package args

import (
	"errors"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/consolekit/pkg/errors"
)

const (
	namePrefix    = "-"
	helpDelimiter = "     "
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("short_name", func(fl validator.FieldLevel) bool {
			r := rune(fl.Field().Int())
			return r < unicode.MaxASCII && unicode.IsLetter(r)
		})

		validateInst = v
	})

	return validateInst
}

// AllowedArg declares a flag the parser accepts. It can be given on the
// command line as -ShortName or -LongName.
type AllowedArg struct {
	ShortName   rune `validate:"short_name"`
	HasValue    bool
	LongName    string `validate:"omitempty,alpha"`
	Description string
	Required    bool
}

// Validate checks that the short name is an ASCII letter and the long name,
// when set, consists of ASCII letters only.
func (a AllowedArg) Validate() error {
	err := validatorInstance().Struct(a)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch fe.Field() {
		case "ShortName":
			return apperrors.NewValidationError("short_name", "short name "+quoteRune(a.ShortName)+" must be a letter", err)
		case "LongName":
			return apperrors.NewValidationError("long_name", "long name '"+a.LongName+"' must contain letters only", err)
		}
	}
	return apperrors.NewValidationError("", err.Error(), err)
}

func quoteRune(r rune) string {
	return "'" + string(r) + "'"
}

func (a AllowedArg) hasLongName() bool {
	return a.LongName != ""
}

func (a AllowedArg) matches(name string) bool {
	return string(a.ShortName) == name || (a.hasLongName() && a.LongName == name)
}

// HelpText lists every allowed argument, one name per line: the short name,
// then the long name when present, each followed by the description aligned
// in a column after the longest name.
func HelpText(allowed []AllowedArg) string {
	longest := longestNameLength(allowed)

	var sb strings.Builder
	for _, a := range allowed {
		writeHelpLine(&sb, string(a.ShortName), longest, a.Description)
		if a.hasLongName() {
			writeHelpLine(&sb, a.LongName, longest, a.Description)
		}
	}
	return sb.String()
}

func writeHelpLine(sb *strings.Builder, name string, longest int, description string) {
	sb.WriteString(namePrefix)
	sb.WriteString(name)
	if description != "" {
		sb.WriteString(strings.Repeat(" ", longest-len(name)))
		sb.WriteString(helpDelimiter)
		sb.WriteString(description)
	}
	sb.WriteString("\n")
}

// longestNameLength is at least one, the length of a short name.
func longestNameLength(allowed []AllowedArg) int {
	longest := 1
	for _, a := range allowed {
		if len(a.LongName) > longest {
			longest = len(a.LongName)
		}
	}
	return longest
}
